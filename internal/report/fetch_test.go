package report

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write([]byte("image-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)

	data, err := f.Fetch(srv.URL + "/ok.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	_, err = f.Fetch(srv.URL + "/missing.png")
	assert.Error(t, err)
}

func TestHTTPFetcher_TimeoutBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(20 * time.Millisecond)

	_, err := f.Fetch(srv.URL + "/slow.png")
	assert.Error(t, err)
}
