package objects

import (
	"time"

	"gorm.io/datatypes"
)

// Specialization rows share their primary key with the owning ArtObject and
// are never created on their own. The unique key doubles as the guard against
// a second specialization for the same object.

type Sculpture struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Material string  `gorm:"type:varchar(100);not null" json:"material"`
	Height   *string `gorm:"type:varchar(50)" json:"height,omitempty"`
	Width    *string `gorm:"type:varchar(50)" json:"width,omitempty"`
	Weight   *string `gorm:"type:varchar(50)" json:"weight,omitempty"`

	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Painting struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PaintType string `gorm:"type:varchar(50);not null" json:"paint_type"`
	DrawnOn   string `gorm:"type:varchar(50);not null" json:"drawn_on"`

	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OtherArt struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type string `gorm:"type:varchar(100);not null" json:"type"`

	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
