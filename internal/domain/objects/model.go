package objects

import (
	"time"

	"museum-app/internal/domain/artists"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind is the object_type discriminator. It decides which specialization row
// exists for an ArtObject: exactly one of Sculpture, Painting, OtherArt.
type Kind string

const (
	KindSculpture Kind = "sculpture"
	KindPainting  Kind = "painting"
	KindOther     Kind = "other"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSculpture, KindPainting, KindOther:
		return true
	}
	return false
}

type Style string

const (
	StyleClassic     Style = "classic"
	StyleModern      Style = "modern"
	StyleRenaissance Style = "renaissance"
	StyleBaroque     Style = "baroque"
	StyleRococo      Style = "rococo"
	StyleAbstract    Style = "abstract"
	StyleOther       Style = "other"
)

func (s Style) Valid() bool {
	switch s {
	case StyleClassic, StyleModern, StyleRenaissance, StyleBaroque, StyleRococo, StyleAbstract, StyleOther:
		return true
	}
	return false
}

type ArtObject struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `json:"description,omitempty"`
	Dimensions  *string `gorm:"type:varchar(100)" json:"dimensions,omitempty"`
	Department  *string `gorm:"type:varchar(100)" json:"department,omitempty"`

	Style      Style `gorm:"type:varchar(20);not null" json:"style"`
	ObjectType Kind  `gorm:"type:varchar(20);not null;index" json:"object_type"`

	Epoch         *string `gorm:"type:varchar(80)" json:"epoch,omitempty"`
	OriginCountry *string `json:"origin_country,omitempty"`
	Year          string  `gorm:"not null" json:"year"`

	ArtistID *string         `gorm:"type:uuid;index" json:"artist_id,omitempty"`
	Artist   *artists.Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artist,omitempty"`

	// exactly one of these exists, selected by ObjectType
	Sculpture *Sculpture `gorm:"foreignKey:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sculpture,omitempty"`
	Painting  *Painting  `gorm:"foreignKey:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"painting,omitempty"`
	OtherArt  *OtherArt  `gorm:"foreignKey:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"other_art,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *ArtObject) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
