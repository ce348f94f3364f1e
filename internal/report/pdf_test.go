package report

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicetrack/internal/domain/services"
)

type stubFetcher struct {
	blobs map[string][]byte
}

func (s stubFetcher) Fetch(url string) ([]byte, error) {
	if b, ok := s.blobs[url]; ok {
		return b, nil
	}
	return nil, errors.New("unreachable")
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for x := 0; x < 8; x++ {
		for y := 0; y < 6; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fixedClockGenerator(fetch Fetcher) *Generator {
	g := NewGenerator(fetch)
	g.Now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
	return g
}

// pageCount counts page objects in the raw PDF; dictionaries are written
// uncompressed so "/Type /Page" is countable ("/Type /Pages" is the page
// tree node, not a page).
func pageCount(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func TestRenderPDF_SinglePage(t *testing.T) {
	g := fixedClockGenerator(stubFetcher{})

	out, err := g.RenderPDF(services.Service{
		ID:     "id-1",
		Name:   "Short",
		Status: services.StatusPending,
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(out))
}

func TestRenderPDF_LongContentBreaksPages(t *testing.T) {
	g := fixedClockGenerator(stubFetcher{})

	long := strings.Repeat("A long line of process documentation that wraps. ", 400)
	out, err := g.RenderPDF(services.Service{
		ID:      "id-2",
		Name:    "Long",
		Status:  services.StatusInProgress,
		Process: long,
		Result:  long,
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, pageCount(out), 2)
}

func TestRenderPDF_EmbedsImagesMainFirst(t *testing.T) {
	main := "http://blobs/main.png"
	img := pngBytes(t)
	g := fixedClockGenerator(stubFetcher{blobs: map[string][]byte{
		main:                  img,
		"http://blobs/g1.png": img,
		"http://blobs/g2.png": img,
	}})

	out, err := g.RenderPDF(services.Service{
		ID:       "id-3",
		Name:     "Photos",
		Status:   services.StatusCompleted,
		ImageURL: &main,
		Images:   []string{"http://blobs/g1.png", "http://blobs/g2.png"},
	})

	require.NoError(t, err)
	// Three full-width 4:3 images cannot share one page.
	assert.GreaterOrEqual(t, pageCount(out), 2)
}

func TestRenderPDF_FailedFetchSkipsImageOnly(t *testing.T) {
	main := "http://blobs/main.png"
	img := pngBytes(t)
	blobs := map[string][]byte{
		main:                  img,
		"http://blobs/g1.png": img,
		"http://blobs/g2.png": img,
	}
	svc := services.Service{
		ID:       "id-4",
		Name:     "Partial",
		Status:   services.StatusCompleted,
		ImageURL: &main,
		Images:   []string{"http://blobs/g1.png", "http://blobs/g2.png"},
	}

	full, err := fixedClockGenerator(stubFetcher{blobs: blobs}).RenderPDF(svc)
	require.NoError(t, err)

	delete(blobs, "http://blobs/g1.png")
	partial, err := fixedClockGenerator(stubFetcher{blobs: blobs}).RenderPDF(svc)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(partial, []byte("%PDF")))
	assert.Less(t, pageCount(partial), pageCount(full))
}

func TestRenderPDF_UndecodableImageSkipped(t *testing.T) {
	main := "http://blobs/broken.png"
	g := fixedClockGenerator(stubFetcher{blobs: map[string][]byte{
		main: []byte("this is not an image"),
	}})

	out, err := g.RenderPDF(services.Service{
		ID:       "id-5",
		Name:     "Broken",
		Status:   services.StatusAnalysis,
		ImageURL: &main,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(out))
}

func TestRenderPDF_DeterministicWithFixedClock(t *testing.T) {
	g := fixedClockGenerator(stubFetcher{})
	svc := services.Service{ID: "id-6", Name: "Stable", Status: services.StatusPending}

	a, err := g.RenderPDF(svc)
	require.NoError(t, err)
	b, err := g.RenderPDF(svc)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCollectImages_Order(t *testing.T) {
	main := "m"
	all := collectImages(services.Service{
		ImageURL: &main,
		Images:   []string{"g1", "g2"},
	})

	require.Len(t, all, 3)
	assert.Equal(t, "Main Photo", all[0].caption)
	assert.Equal(t, "m", all[0].url)
	assert.Equal(t, "Gallery #1", all[1].caption)
	assert.Equal(t, "Gallery #2", all[2].caption)
}

func TestCollectImages_NoMain(t *testing.T) {
	all := collectImages(services.Service{Images: []string{"g1"}})

	require.Len(t, all, 1)
	assert.Equal(t, "Gallery #1", all[0].caption)
}
