package report

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves remote image bytes for embedding into the PDF. Each
// fetch is independently fallible; the renderer skips failures.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// HTTPFetcher fetches over plain HTTP with a bounded client timeout, so one
// hung image can never stall the rest of the document.
type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
