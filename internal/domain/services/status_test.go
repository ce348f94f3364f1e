package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	for _, s := range StatusOptions {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, Status("Done").Valid())
	assert.False(t, Status("").Valid())
}

func TestApplyStatusChange_CompletedStampsToday(t *testing.T) {
	status, end := ApplyStatusChange(StatusCompleted, nil, nil, "2026-09-01")

	assert.Equal(t, StatusCompleted, status)
	require.NotNil(t, end)
	assert.Equal(t, "2026-09-01", *end)
}

func TestApplyStatusChange_ExplicitEndDateWins(t *testing.T) {
	explicit := "2026-08-15"
	_, end := ApplyStatusChange(StatusCompleted, nil, &explicit, "2026-09-01")

	require.NotNil(t, end)
	assert.Equal(t, "2026-08-15", *end)
}

func TestApplyStatusChange_CompletedOverwritesStoredDate(t *testing.T) {
	stored := "2025-01-01"
	_, end := ApplyStatusChange(StatusCompleted, &stored, nil, "2026-09-01")

	require.NotNil(t, end)
	assert.Equal(t, "2026-09-01", *end)
}

func TestApplyStatusChange_NonCompletedKeepsCurrentDate(t *testing.T) {
	stored := "2025-01-01"
	status, end := ApplyStatusChange(StatusInProgress, &stored, nil, "2026-09-01")

	assert.Equal(t, StatusInProgress, status)
	require.NotNil(t, end)
	assert.Equal(t, "2025-01-01", *end)
}

func TestApplyStatusChange_NonCompletedNoDates(t *testing.T) {
	_, end := ApplyStatusChange(StatusPending, nil, nil, "2026-09-01")
	assert.Nil(t, end)
}

func TestApplyStatusChange_EmptyExplicitTreatedAsAbsent(t *testing.T) {
	empty := ""
	_, end := ApplyStatusChange(StatusCompleted, nil, &empty, "2026-09-01")

	require.NotNil(t, end)
	assert.Equal(t, "2026-09-01", *end)
}
