package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"servicetrack/internal/domain/services"
)

func sampleService() services.Service {
	end := "2026-02-01"
	main := "http://blobs/main.jpg"
	return services.Service{
		ID:          "11111111-2222-3333-4444-555555555555",
		Name:        "Survey A",
		Description: "Topographic survey of lot 14",
		Responsible: "Dana",
		Status:      services.StatusCompleted,
		StartDate:   "2026-01-10",
		EndDate:     &end,
		Process:     "Field measurements over two days",
		Result:      "Full elevation map delivered",
		Notes:       []string{"client approved scope", "weather delay on day 2"},
		ImageURL:    &main,
		Images:      []string{"http://blobs/g1.jpg", "http://blobs/g2.jpg"},
	}
}

func TestRenderText_AllFields(t *testing.T) {
	out := RenderText(sampleService())

	assert.True(t, strings.HasPrefix(out, "SERVICE REPORT - SERVICETRACK CLOUD\n"))
	assert.Contains(t, out, "Name: Survey A")
	assert.Contains(t, out, "Status: Completed")
	assert.Contains(t, out, "Start Date: 2026-01-10")
	assert.Contains(t, out, "End Date: 2026-02-01")
	assert.Contains(t, out, "PROCESS:\nField measurements over two days")
	assert.Contains(t, out, "client approved scope\nweather delay on day 2")
	assert.Contains(t, out, "MAIN PHOTO: http://blobs/main.jpg")
	assert.Contains(t, out, "EXTRA PHOTOS: 2")
}

func TestRenderText_Placeholders(t *testing.T) {
	out := RenderText(services.Service{
		ID:     "id-1",
		Name:   "Bare",
		Status: services.StatusPending,
	})

	assert.Contains(t, out, "Description: Not informed")
	assert.Contains(t, out, "Responsible: Not informed")
	assert.Contains(t, out, "Start Date: -")
	assert.Contains(t, out, "End Date: -")
	assert.Contains(t, out, "PROCESS:\nNot informed")
	assert.Contains(t, out, "RESULT:\nNot informed")
	assert.Contains(t, out, "NOTES:\nNone")
	assert.Contains(t, out, "MAIN PHOTO: N/A")
	assert.Contains(t, out, "EXTRA PHOTOS: 0")
}

func TestRenderText_Deterministic(t *testing.T) {
	svc := sampleService()
	assert.Equal(t, RenderText(svc), RenderText(svc))
}
