package exhibitions

import (
	"time"

	"museum-app/internal/types"
)

type LinkInput struct {
	ArtObjectID  string `json:"art_object_id" binding:"required"`
	ExhibitionID string `json:"exhibition_id" binding:"required"`
}

// LinkResponse reports a bulk link call: linked pairs and per-item failures,
// both in input order. Never a single boolean.
type LinkResponse struct {
	Linked   []LinkInput          `json:"linked"`
	Failures []types.BatchFailure `json:"failures"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, types.Validation("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
