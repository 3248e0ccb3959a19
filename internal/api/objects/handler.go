package objects

import (
	"net/http"

	"museum-app/database"
	"museum-app/internal/domain/artists"
	"museum-app/internal/domain/objects"
	"museum-app/internal/infra/storage"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const searchLimit = 5

// ------------------------------
// POST /create/art_object/sculpture
// ------------------------------
func CreateSculpture(c *gin.Context) {
	form := bindBaseForm(c)
	base := form.toModel(objects.KindSculpture)

	material := c.PostForm("material")
	if material == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "material is required"})
		return
	}
	height := optional(c.PostForm("height"))
	width := optional(c.PostForm("width"))
	weight := optional(c.PostForm("weight"))

	spec, err := createTyped(database.DB, base, formFiles(c), func(id string, images datatypes.JSONSlice[string]) any {
		return &objects.Sculpture{
			ID:       id,
			Material: material,
			Height:   height,
			Width:    width,
			Weight:   weight,
			Images:   images,
		}
	})
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sculpture art object created successfully",
		"data":    CreatedResponse{ArtObject: base, Specialization: spec},
	})
}

// ------------------------------
// POST /create/art_object/painting
// ------------------------------
func CreatePainting(c *gin.Context) {
	form := bindBaseForm(c)
	base := form.toModel(objects.KindPainting)

	paintType := c.PostForm("paint_type")
	drawnOn := c.PostForm("drawn_on")
	if paintType == "" || drawnOn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paint_type and drawn_on are required"})
		return
	}

	spec, err := createTyped(database.DB, base, formFiles(c), func(id string, images datatypes.JSONSlice[string]) any {
		return &objects.Painting{
			ID:        id,
			PaintType: paintType,
			DrawnOn:   drawnOn,
			Images:    images,
		}
	})
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Painting art object created successfully",
		"data":    CreatedResponse{ArtObject: base, Specialization: spec},
	})
}

// ------------------------------
// POST /create/art_object/other_art
// ------------------------------
func CreateOtherArt(c *gin.Context) {
	form := bindBaseForm(c)
	base := form.toModel(objects.KindOther)

	otherType := c.PostForm("other_art_type")
	if otherType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "other_art_type is required"})
		return
	}

	spec, err := createTyped(database.DB, base, formFiles(c), func(id string, images datatypes.JSONSlice[string]) any {
		return &objects.OtherArt{
			ID:     id,
			Type:   otherType,
			Images: images,
		}
	})
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Other art object created successfully",
		"data":    CreatedResponse{ArtObject: base, Specialization: spec},
	})
}

// ------------------------------
// GET /get/art_object/:kind/all/:skip/:limit
// ------------------------------
func ListByKind(kind objects.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, err := pageParams(c)
		if err != nil {
			c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		yearAsc, titleAsc := sortFlags(c)

		var rows []objects.ArtObject
		q := CompositeSort(KindQuery(database.DB, kind), yearAsc, titleAsc)
		if err := paginate(q, skip, limit).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load art objects"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Art objects fetched successfully", "data": rows})
	}
}

// ------------------------------
// GET /get/art_object/?object_type=&art_object_id=
// ------------------------------
func GetByID(c *gin.Context) {
	id := c.Query("art_object_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "art_object_id is required"})
		return
	}

	var row objects.ArtObject
	err := withSpecializations(database.DB).First(&row, "art_objects.id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Art object not found"})
		return
	}

	spec, err := resolveSpecialization(&row)
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Art object fetched successfully",
		"data":    CreatedResponse{ArtObject: &row, Specialization: spec},
	})
}

// ------------------------------
// GET /get/art_object/id/all?object_type=
// ------------------------------
func ListIDs(c *gin.Context) {
	kind := objects.Kind(c.Query("object_type"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid object type"})
		return
	}

	var ids []string
	err := database.DB.Model(&objects.ArtObject{}).
		Where("object_type = ?", kind).
		Pluck("id", &ids).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ids"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ids})
}

// ------------------------------
// GET /get/paintings/name/?term=&object_type=
//
// Quick lookup, hard-capped at 5 matches, not a paginated listing.
// ------------------------------
func SearchByName(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term is required"})
		return
	}

	q := database.DB.Model(&objects.ArtObject{})
	if t := c.Query("object_type"); t != "" {
		kind := objects.Kind(t)
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid object type"})
			return
		}
		q = q.Where("object_type = ?", kind)
	}

	var rows []objects.ArtObject
	if err := titleSearch(q, term).Limit(searchLimit).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Art objects fetched successfully", "data": rows})
}

// ------------------------------
// GET /get/art_object/artist/all/:artist_id
//
// Gallery view: the artist plus the image-bearing objects they own. An
// object whose specialization has an empty image list is excluded.
// ------------------------------
func ListByArtist(c *gin.Context) {
	artistID := c.Param("artist_id")

	var artist artists.Artist
	if err := database.DB.First(&artist, "id = ?", artistID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	var rows []objects.ArtObject
	err := withSpecializations(database.DB).
		Where("art_objects.artist_id = ?", artistID).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load art objects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":      artist,
		"art_objects": imageProjections(rows),
	})
}

// ------------------------------
// DELETE /delete/art_object/:id
//
// Removes the base row; the specialization, permanent/borrowed rows and
// exhibition associations go with it via the cascade rules. Stored image
// blobs are destroyed best effort first.
// ------------------------------
func Delete(c *gin.Context) {
	id := c.Param("id")

	var row objects.ArtObject
	if err := withSpecializations(database.DB).First(&row, "art_objects.id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Art object not found"})
		return
	}

	if images, ok := specializationImages(&row); ok {
		for i := range images {
			_ = storage.Default.Destroy(storage.ImageKey(row.ID, i, string(row.ObjectType)))
		}
	}

	if err := database.DB.Delete(&objects.ArtObject{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete art object"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Art object deleted successfully"})
}
