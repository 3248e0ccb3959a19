package artists

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Artist struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_artists_name" json:"name"`
	Description *string `json:"description,omitempty"`
	ArtistBio   *string `json:"artist_bio,omitempty"`

	Gender        *string `gorm:"type:varchar(10)" json:"gender,omitempty"`
	OriginCountry *string `gorm:"type:varchar(50)" json:"origin_country,omitempty"`

	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	DateOfDied  *time.Time `gorm:"type:date" json:"date_of_died,omitempty"`

	// external authority identifiers (Wikidata QID, Getty ULAN)
	WikiQID *string `json:"wiki_qid,omitempty"`
	ULAN    *string `gorm:"column:ulan" json:"ulan,omitempty"`

	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}
