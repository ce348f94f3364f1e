package services

import "time"

// Service is one tracked service engagement. Dates travel as YYYY-MM-DD
// strings end to end; Notes and Images are jsonb columns so ordering
// survives round-trips.
type Service struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`

	Status    Status  `gorm:"type:text;not null;default:'Pending';index" json:"status"`
	StartDate string  `gorm:"column:start_date" json:"start_date"`
	EndDate   *string `gorm:"column:end_date" json:"end_date"`

	Process string `json:"process"`
	Result  string `json:"result"`

	Notes []string `gorm:"serializer:json;type:jsonb" json:"notes"`

	// ImageURL is the single featured photo; Images is the ordered gallery.
	// A nil ImageURL with a non-empty gallery is a valid transient state.
	ImageURL *string  `gorm:"column:image_url" json:"image_url"`
	Images   []string `gorm:"serializer:json;type:jsonb" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
