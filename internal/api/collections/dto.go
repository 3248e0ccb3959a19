package collections

import (
	"time"

	"museum-app/internal/domain/collections"
	"museum-app/internal/types"
)

type CreateCollectionInput struct {
	Name        string  `json:"name" binding:"required"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Contact     string  `json:"contact" binding:"required"`
}

type BorrowedInput struct {
	DateBorrowed string  `json:"date_borrowed" binding:"required"`
	DateReturned *string `json:"date_returned"`
	ArtObjectID  string  `json:"art_object_id" binding:"required"`
	CollectionID string  `json:"collection_id" binding:"required"`
}

type PermanentInput struct {
	DateAcquired string  `json:"date_acquired" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Cost         *string `json:"cost"`
	ArtObjectID  string  `json:"art_object_id" binding:"required"`
}

// BatchResponse carries both sides of a partial batch outcome, created rows
// and per-item failures in input order.
type BatchResponse[T any] struct {
	Created  []T                  `json:"created"`
	Failures []types.BatchFailure `json:"failures"`
}

func (in BorrowedInput) toModel() (*collections.BorrowedArtObject, error) {
	borrowed, err := parseDate(in.DateBorrowed)
	if err != nil {
		return nil, err
	}
	b := &collections.BorrowedArtObject{
		DateBorrowed: borrowed,
		ArtObjectID:  in.ArtObjectID,
		CollectionID: in.CollectionID,
	}
	if in.DateReturned != nil && *in.DateReturned != "" {
		returned, err := parseDate(*in.DateReturned)
		if err != nil {
			return nil, err
		}
		if returned.Before(borrowed) {
			return nil, types.Validation("date_returned precedes date_borrowed")
		}
		b.DateReturned = &returned
	}
	return b, nil
}

func (in PermanentInput) toModel() (*collections.PermanentCollection, error) {
	status := collections.PermanentStatus(in.Status)
	if !status.Valid() {
		return nil, types.Validation("invalid status %q", in.Status)
	}
	acquired, err := parseDate(in.DateAcquired)
	if err != nil {
		return nil, err
	}
	return &collections.PermanentCollection{
		DateAcquired: acquired,
		Status:       status,
		Cost:         in.Cost,
		ArtObjectID:  in.ArtObjectID,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, types.Validation("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
