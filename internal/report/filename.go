package report

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

// SafeName collapses anything outside [a-zA-Z0-9-] to underscores so the
// record name can be used in a download filename.
func SafeName(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "service"
	}
	return s
}

func TextFileName(name string) string {
	return "service-" + SafeName(name) + ".txt"
}

func PDFFileName(name string) string {
	return "Report_" + SafeName(name) + ".pdf"
}
