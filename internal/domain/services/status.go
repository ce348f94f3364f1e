package services

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusAnalysis   Status = "Analysis"
	StatusCompleted  Status = "Completed"
	StatusCanceled   Status = "Canceled"
)

var StatusOptions = []Status{
	StatusPending,
	StatusInProgress,
	StatusAnalysis,
	StatusCompleted,
	StatusCanceled,
}

func (s Status) Valid() bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// ApplyStatusChange resolves the (status, end date) pair for a status update
// so both land in one write. An explicit end date from the same call always
// wins. Completed without one stamps today, so a Completed record is never
// observed with a missing end date.
func ApplyStatusChange(status Status, current *string, explicit *string, today string) (Status, *string) {
	if explicit != nil && *explicit != "" {
		return status, explicit
	}
	if status == StatusCompleted {
		d := today
		return status, &d
	}
	return status, current
}
