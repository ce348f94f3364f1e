package services

import "servicetrack/internal/domain/services"

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Responsible string          `json:"responsible"`
	Status      services.Status `json:"status"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Process     string          `json:"process"`
	Result      string          `json:"result"`
}

type UpdateStatusRequest struct {
	Status services.Status `json:"status" binding:"required"`

	// EndDate is optional; when present together with Completed it wins
	// over the automatic stamp.
	EndDate *string `json:"end_date"`
}

type UpdateTechnicalRequest struct {
	Process string `json:"process"`
	Result  string `json:"result"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}
