// Package storage holds the blob store for uploaded evidence photos. Blobs
// are written under opaque keys and retrieved through stable public URLs;
// nothing in here ever deletes a blob (detached references are left for the
// store's own retention to clean up).
package storage

import "errors"

var (
	// ErrInvalidKey indicates the key is empty, absolute, or attempts path
	// traversal.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// BlobStore is the contract the upload and report code depend on.
type BlobStore interface {
	// Put stores the blob under key and returns its public URL.
	Put(key string, data []byte) (string, error)

	// PublicURL resolves the stable retrieval reference for a stored key.
	PublicURL(key string) string
}

// Files is the process-wide store, set once from main.
var Files BlobStore

func Init(basePath, baseURL string) error {
	fs, err := NewFilesystem(basePath, baseURL)
	if err != nil {
		return err
	}
	Files = fs
	return nil
}
