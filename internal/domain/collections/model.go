package collections

import (
	"time"

	"museum-app/internal/domain/objects"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermanentStatus is where a permanently held object currently is.
type PermanentStatus string

const (
	StatusDisplay PermanentStatus = "display"
	StatusLoan    PermanentStatus = "loan"
	StatusStored  PermanentStatus = "stored"
)

func (s PermanentStatus) Valid() bool {
	switch s {
	case StatusDisplay, StatusLoan, StatusStored:
		return true
	}
	return false
}

// Collection is an external institution the museum borrows objects from.
type Collection struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"index" json:"name"`
	Type        *string `gorm:"type:varchar(100)" json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Contact     string  `gorm:"not null" json:"contact"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type PermanentCollection struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DateAcquired time.Time       `gorm:"type:date;not null" json:"date_acquired"`
	Status       PermanentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Cost         *string         `json:"cost,omitempty"`

	ArtObjectID string             `gorm:"type:uuid;not null;uniqueIndex:idx_permanent_art_object" json:"art_object_id"`
	ArtObject   *objects.ArtObject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"art_object,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PermanentCollection) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// BorrowedArtObject is a loan record. date_returned null means the loan is
// still open; one object has at most one open loan at a time, enforced at
// link time rather than in the schema.
type BorrowedArtObject struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DateBorrowed time.Time  `gorm:"type:date;not null" json:"date_borrowed"`
	DateReturned *time.Time `gorm:"type:date" json:"date_returned,omitempty"`

	ArtObjectID string             `gorm:"type:uuid;not null;index" json:"art_object_id"`
	ArtObject   *objects.ArtObject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"art_object,omitempty"`

	CollectionID string      `gorm:"type:uuid;not null;index" json:"collection_id"`
	Collection   *Collection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"collection,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BorrowedArtObject) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
