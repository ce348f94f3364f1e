package services

import (
	"fmt"
	"net/http"
	"time"

	"servicetrack/internal/report"

	"github.com/gin-gonic/gin"
)

var reportGen = report.NewGenerator(report.NewHTTPFetcher(15 * time.Second))

// ------------------------------
// GET /services/:id/export/txt
// ------------------------------
func ExportText(c *gin.Context) {
	svc, ok := loadService(c)
	if !ok {
		return
	}

	content := report.RenderText(svc)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.TextFileName(svc.Name)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// ------------------------------
// GET /services/:id/export/pdf
// ------------------------------
func ExportPDF(c *gin.Context) {
	svc, ok := loadService(c)
	if !ok {
		return
	}

	out, err := reportGen.RenderPDF(svc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.PDFFileName(svc.Name)))
	c.Data(http.StatusOK, "application/pdf", out)
}
