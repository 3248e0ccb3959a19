package artists

import (
	"time"

	"museum-app/internal/domain/artists"
	"museum-app/internal/types"
)

type CreateArtistInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	ArtistBio     *string `json:"artist_bio"`
	Gender        *string `json:"gender"`
	OriginCountry *string `json:"origin_country"`
	DateOfBirth   *string `json:"date_of_birth"`
	DateOfDied    *string `json:"date_of_died"`
	WikiQID       *string `json:"wiki_qid"`
	ULAN          *string `json:"ulan"`
}

func (in CreateArtistInput) toModel() (*artists.Artist, error) {
	if in.Name == "" {
		return nil, types.Validation("name is required")
	}
	if in.Gender != nil && !artists.ValidGender(*in.Gender) {
		return nil, types.Validation("invalid gender %q", *in.Gender)
	}

	a := &artists.Artist{
		Name:          in.Name,
		Description:   in.Description,
		ArtistBio:     in.ArtistBio,
		Gender:        in.Gender,
		OriginCountry: in.OriginCountry,
		WikiQID:       in.WikiQID,
		ULAN:          in.ULAN,
	}

	var err error
	if a.DateOfBirth, err = parseDatePtr(in.DateOfBirth); err != nil {
		return nil, err
	}
	if a.DateOfDied, err = parseDatePtr(in.DateOfDied); err != nil {
		return nil, err
	}
	if a.DateOfBirth != nil && a.DateOfDied != nil && a.DateOfDied.Before(*a.DateOfBirth) {
		return nil, types.Validation("date_of_died precedes date_of_birth for %q", in.Name)
	}
	return a, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, types.Validation("invalid date %q, want YYYY-MM-DD", *s)
	}
	return &t, nil
}

// BatchCreateResponse partitions a bulk create into the records written now
// and the pre-existing records matched by name. Order within each list
// follows the input.
type BatchCreateResponse struct {
	NewArtists   []artists.Artist     `json:"new_artists"`
	ArtistExists []artists.Artist     `json:"artist_exists"`
	Failures     []types.BatchFailure `json:"failures"`
}
