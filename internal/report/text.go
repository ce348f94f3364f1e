package report

import (
	"fmt"
	"strings"

	"servicetrack/internal/domain/services"
)

// RenderText produces the plain-text report for a record. Output is
// byte-deterministic: the same record always renders the same bytes.
func RenderText(svc services.Service) string {
	var b strings.Builder

	fmt.Fprintln(&b, "SERVICE REPORT - SERVICETRACK CLOUD")
	fmt.Fprintf(&b, "ID: %s\n", svc.ID)
	fmt.Fprintf(&b, "Name: %s\n", svc.Name)
	fmt.Fprintf(&b, "Status: %s\n", svc.Status)
	fmt.Fprintf(&b, "Description: %s\n", orPlaceholder(svc.Description, "Not informed"))
	fmt.Fprintf(&b, "Responsible: %s\n", orPlaceholder(svc.Responsible, "Not informed"))
	fmt.Fprintf(&b, "Start Date: %s\n", orPlaceholder(svc.StartDate, "-"))
	fmt.Fprintf(&b, "End Date: %s\n", orPlaceholder(deref(svc.EndDate), "-"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "PROCESS:")
	fmt.Fprintln(&b, orPlaceholder(svc.Process, "Not informed"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "RESULT:")
	fmt.Fprintln(&b, orPlaceholder(svc.Result, "Not informed"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "NOTES:")
	if len(svc.Notes) > 0 {
		fmt.Fprintln(&b, strings.Join(svc.Notes, "\n"))
	} else {
		fmt.Fprintln(&b, "None")
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "MAIN PHOTO: %s\n", orPlaceholder(deref(svc.ImageURL), "N/A"))
	fmt.Fprintf(&b, "EXTRA PHOTOS: %d\n", len(svc.Images))

	return b.String()
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
