package services

import "strings"

// StatusCounts is the dashboard aggregation over a user's records.
type StatusCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Analysis   int `json:"analysis"`
	Completed  int `json:"completed"`
	Canceled   int `json:"canceled"`

	// Open is everything neither completed nor canceled.
	Open int `json:"open"`
}

func CountByStatus(list []Service) StatusCounts {
	var c StatusCounts
	c.Total = len(list)
	for _, s := range list {
		switch s.Status {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusAnalysis:
			c.Analysis++
		case StatusCompleted:
			c.Completed++
		case StatusCanceled:
			c.Canceled++
		}
	}
	c.Open = c.Pending + c.InProgress + c.Analysis
	return c
}

// MatchesSearch reports whether a record matches a free-text search term
// over its name and status, case-insensitively. An empty term matches all.
func MatchesSearch(s Service, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(string(s.Status)), term)
}
