package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"servicetrack/internal/domain/services"
)

const (
	pageMargin = 20.0 // mm, uniform on all sides
	lineHeight = 5.0  // mm per wrapped text line
)

// Generator renders a record into a paginated A4 PDF. Fetch supplies remote
// image bytes; Now supplies the generation timestamp and exists so tests can
// pin it.
type Generator struct {
	Fetch Fetcher
	Now   func() time.Time
}

func NewGenerator(fetch Fetcher) *Generator {
	return &Generator{Fetch: fetch, Now: time.Now}
}

type reportImage struct {
	url     string
	caption string
}

func collectImages(svc services.Service) []reportImage {
	all := make([]reportImage, 0, len(svc.Images)+1)
	if svc.ImageURL != nil && *svc.ImageURL != "" {
		all = append(all, reportImage{url: *svc.ImageURL, caption: "Main Photo"})
	}
	for i, url := range svc.Images {
		all = append(all, reportImage{url: url, caption: fmt.Sprintf("Gallery #%d", i+1)})
	}
	return all
}

// RenderPDF renders the full report as one PDF blob. A failed image fetch or
// decode skips that image only; the document itself either renders whole or
// returns an error.
func (g *Generator) RenderPDF(svc services.Service) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(g.Now())
	doc.SetModificationDate(g.Now())
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	w := &pageWriter{doc: doc, pageW: pageW, pageH: pageH, y: pageMargin}

	// Title and generation timestamp.
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(pageMargin, w.y, "Service Report")
	w.y += 10

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.Text(pageMargin, w.y, "Generated at: "+g.Now().Format("2006-01-02 15:04:05"))
	doc.SetTextColor(0, 0, 0)
	w.y += 15

	// Core fields block.
	doc.SetDrawColor(200, 200, 200)
	doc.Line(pageMargin, w.y-5, pageW-pageMargin, w.y-5)

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pageMargin, w.y, "Service: "+svc.Name)
	w.y += 7

	doc.SetFont("Helvetica", "", 10)
	doc.Text(pageMargin, w.y, "ID: "+svc.ID)
	w.y += 5
	doc.Text(pageMargin, w.y, "Status: "+string(svc.Status))
	w.y += 5
	doc.Text(pageMargin, w.y, "Responsible: "+orPlaceholder(svc.Responsible, "-"))
	w.y += 5
	doc.Text(pageMargin, w.y, fmt.Sprintf("Start: %s | End: %s",
		orPlaceholder(svc.StartDate, "-"), orPlaceholder(deref(svc.EndDate), "-")))
	w.y += 10

	doc.Line(pageMargin, w.y-5, pageW-pageMargin, w.y-5)

	// Labeled wrapped-text sections.
	w.wrappedSection("DESCRIPTION:", svc.Description)
	w.y += 5
	w.wrappedSection("PROCESS:", svc.Process)
	w.wrappedSection("RESULT:", svc.Result)
	if len(svc.Notes) > 0 {
		w.wrappedSection("NOTES:", strings.Join(svc.Notes, "\n"))
	}

	// Image section: main photo first, then gallery in order.
	all := collectImages(svc)
	if len(all) > 0 {
		w.breakIfNeeded(40)
		doc.SetFont("Helvetica", "B", 14)
		doc.Text(pageMargin, w.y, "Photo Evidence")
		w.y += 10

		for i, img := range all {
			g.drawImage(w, i, img)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawImage fetches, validates and embeds one remote image together with its
// caption as a single page-break unit. Any failure skips the image.
func (g *Generator) drawImage(w *pageWriter, idx int, img reportImage) {
	data, err := g.Fetch.Fetch(img.url)
	if err != nil {
		return
	}

	// Validate before handing bytes to fpdf: its error state is sticky and
	// would poison the whole document.
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return
	}
	var imgType string
	switch format {
	case "jpeg":
		imgType = "JPG"
	case "png":
		imgType = "PNG"
	case "gif":
		imgType = "GIF"
	default:
		return
	}

	opts := fpdf.ImageOptions{ImageType: imgType}
	name := fmt.Sprintf("report-img-%d", idx)
	w.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if w.doc.Err() {
		w.doc.ClearError()
		return
	}

	// Fixed 4:3 display box regardless of the source's true aspect ratio.
	imgW := w.pageW - pageMargin*2
	imgH := imgW * 0.75

	w.breakIfNeeded(imgH + 15)

	w.doc.SetFont("Helvetica", "I", 10)
	w.doc.Text(pageMargin, w.y, img.caption)
	w.y += 3

	w.doc.ImageOptions(name, pageMargin, w.y, imgW, imgH, false, opts, 0, "")
	w.y += imgH + 10
}

// pageWriter carries the running vertical cursor across pages.
type pageWriter struct {
	doc   *fpdf.Fpdf
	pageW float64
	pageH float64
	y     float64
}

// breakIfNeeded starts a new page before a block of the given height would
// run past the bottom margin.
func (w *pageWriter) breakIfNeeded(needed float64) bool {
	if w.y+needed > w.pageH-pageMargin {
		w.doc.AddPage()
		w.y = pageMargin
		return true
	}
	return false
}

// wrappedSection writes a bold label line plus a body wrapped to the content
// width, breaking the page on the body's computed height.
func (w *pageWriter) wrappedSection(label, body string) {
	w.breakIfNeeded(20)

	w.doc.SetFont("Helvetica", "B", 10)
	w.doc.Text(pageMargin, w.y, label)
	w.y += 5

	if body == "" {
		body = "Not informed"
	}
	w.doc.SetFont("Helvetica", "", 10)
	lines := w.doc.SplitText(body, w.pageW-pageMargin*2)

	w.breakIfNeeded(float64(len(lines)) * lineHeight)
	for _, line := range lines {
		w.doc.Text(pageMargin, w.y, line)
		w.y += lineHeight
	}
	w.y += 5
}
