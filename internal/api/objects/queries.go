package objects

import (
	"strings"

	"museum-app/internal/domain/objects"

	"gorm.io/gorm"
)

// KindQuery selects art objects whose specialization of the given kind exists,
// with the specialization row eagerly loaded. The inner join keeps listing to
// one round trip per preload instead of one query per row.
func KindQuery(db *gorm.DB, kind objects.Kind) *gorm.DB {
	q := db.Model(&objects.ArtObject{}).Where("art_objects.object_type = ?", kind)
	switch kind {
	case objects.KindSculpture:
		q = q.Joins("JOIN sculptures ON sculptures.id = art_objects.id").Preload("Sculpture")
	case objects.KindPainting:
		q = q.Joins("JOIN paintings ON paintings.id = art_objects.id").Preload("Painting")
	case objects.KindOther:
		q = q.Joins("JOIN other_arts ON other_arts.id = art_objects.id").Preload("OtherArt")
	}
	return q
}

// withSpecializations preloads all three specialization relations; used where
// the kind varies per row (by artist, by exhibition).
func withSpecializations(db *gorm.DB) *gorm.DB {
	return db.Model(&objects.ArtObject{}).
		Preload("Sculpture").
		Preload("Painting").
		Preload("OtherArt")
}

// CompositeSort chains the primary year order with the title tiebreak; the
// secondary key always applies after the primary, each direction independent.
func CompositeSort(q *gorm.DB, yearAsc bool, titleAsc bool) *gorm.DB {
	if yearAsc {
		q = q.Order("art_objects.year ASC")
	} else {
		q = q.Order("art_objects.year DESC")
	}
	if titleAsc {
		q = q.Order("art_objects.title ASC")
	} else {
		q = q.Order("art_objects.title DESC")
	}
	return q
}

func paginate(q *gorm.DB, skip int, limit int) *gorm.DB {
	return q.Offset(skip).Limit(limit)
}

func titleSearch(q *gorm.DB, term string) *gorm.DB {
	return q.Where("LOWER(art_objects.title) LIKE ?", "%"+strings.ToLower(term)+"%")
}
