package exhibitions

import (
	"time"

	"museum-app/internal/domain/objects"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Exhibition struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Exhibition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExhibitionArtObject links an art object into an exhibition. The composite
// key keeps the pair unique; both sides cascade on delete.
type ExhibitionArtObject struct {
	ArtObjectID  string `gorm:"type:uuid;primaryKey" json:"art_object_id"`
	ExhibitionID string `gorm:"type:uuid;primaryKey" json:"exhibition_id"`

	ArtObject  *objects.ArtObject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Exhibition *Exhibition        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
