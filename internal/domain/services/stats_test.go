package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountByStatus(t *testing.T) {
	list := []Service{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusInProgress},
		{Status: StatusAnalysis},
		{Status: StatusCompleted},
		{Status: StatusCompleted},
		{Status: StatusCompleted},
		{Status: StatusCanceled},
	}

	c := CountByStatus(list)

	assert.Equal(t, 8, c.Total)
	assert.Equal(t, 2, c.Pending)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 1, c.Analysis)
	assert.Equal(t, 3, c.Completed)
	assert.Equal(t, 1, c.Canceled)
	assert.Equal(t, 4, c.Open)
}

func TestCountByStatus_Empty(t *testing.T) {
	c := CountByStatus(nil)
	assert.Equal(t, StatusCounts{}, c)
}

func TestMatchesSearch(t *testing.T) {
	svc := Service{Name: "Financial Consulting", Status: StatusInProgress}

	assert.True(t, MatchesSearch(svc, ""))
	assert.True(t, MatchesSearch(svc, "financial"))
	assert.True(t, MatchesSearch(svc, "CONSULT"))
	assert.True(t, MatchesSearch(svc, "inprogress"))
	assert.False(t, MatchesSearch(svc, "plumbing"))
}
