package exhibitions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"museum-app/database"
	"museum-app/internal/domain/exhibitions"
	"museum-app/internal/domain/objects"
	"museum-app/internal/infra/storage"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const searchLimit = 5

// ------------------------------
// POST /create/exhibition  (multipart: name, start_date, end_date, files)
// ------------------------------
func CreateExhibition(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	start, err := parseDate(c.PostForm("start_date"))
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate(c.PostForm("end_date"))
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date precedes start_date"})
		return
	}

	ex := exhibitions.Exhibition{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Images:    datatypes.JSONSlice[string]{},
	}
	if err := database.DB.Create(&ex).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}

	// uploads happen after the row commits, outside any transaction; a
	// failed upload rolls the exhibition back again
	urls := make(datatypes.JSONSlice[string], 0)
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		for i, fh := range form.File["files"] {
			f, oerr := fh.Open()
			if oerr != nil {
				database.DB.Delete(&ex)
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to read upload"})
				return
			}
			url, uerr := storage.Default.Upload(f, storage.ImageKey(ex.ID, i, "exhibition"))
			f.Close()
			if uerr != nil {
				database.DB.Delete(&ex)
				c.JSON(types.HTTPStatus(uerr), gin.H{"error": uerr.Error()})
				return
			}
			urls = append(urls, url)
		}
	}

	ex.Images = urls
	if err := database.DB.Model(&ex).Update("images", urls).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image list"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Exhibition created successfully", "data": ex})
}

// ------------------------------
// POST /create/exhibition/upload_data
//
// Bulk association linking, best effort per pair: every pair is validated
// and committed on its own, failures are collected instead of aborting the
// batch.
// ------------------------------
func LinkArtObjects(c *gin.Context) {
	var inputs []LinkInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := LinkResponse{Linked: []LinkInput{}, Failures: []types.BatchFailure{}}

	for i, in := range inputs {
		if err := linkOne(database.DB, in); err != nil {
			resp.Failures = append(resp.Failures, types.FailureAt(i, err))
			continue
		}
		resp.Linked = append(resp.Linked, in)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exhibition associations processed", "data": resp})
}

func linkOne(db *gorm.DB, in LinkInput) error {
	var count int64
	if err := db.Model(&objects.ArtObject{}).Where("id = ?", in.ArtObjectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return types.NotFound("art object %s not found", in.ArtObjectID)
	}
	if err := db.Model(&exhibitions.Exhibition{}).Where("id = ?", in.ExhibitionID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return types.NotFound("exhibition %s not found", in.ExhibitionID)
	}

	assoc := exhibitions.ExhibitionArtObject{
		ArtObjectID:  in.ArtObjectID,
		ExhibitionID: in.ExhibitionID,
	}
	if err := db.Create(&assoc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return types.Conflict("art object %s already linked to exhibition %s", in.ArtObjectID, in.ExhibitionID)
		}
		return err
	}
	return nil
}

// ------------------------------
// GET /get/exhibitions/name/:exhibition_name
// ------------------------------
func SearchExhibitions(c *gin.Context) {
	term := strings.ToLower(c.Param("exhibition_name"))

	var rows []exhibitions.Exhibition
	err := database.DB.
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Limit(searchLimit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exhibitions fetched successfully", "data": rows})
}

// ------------------------------
// GET /get/exhibitions/?exhibition_id=
// ------------------------------
func GetExhibition(c *gin.Context) {
	var ex exhibitions.Exhibition
	if err := database.DB.First(&ex, "id = ?", c.Query("exhibition_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exhibition fetched successfully", "data": ex})
}

// ------------------------------
// GET /get/exhibitions/all/ids
// ------------------------------
func ListExhibitionIDs(c *gin.Context) {
	var ids []string
	if err := database.DB.Model(&exhibitions.Exhibition{}).Pluck("id", &ids).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ids"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ids})
}

// ------------------------------
// GET /get/exhibitions/all/:skip/:limit
//
// Sorted by end_date with a name tiebreak, both directions selectable.
// ------------------------------
func ListExhibitions(c *gin.Context) {
	skip, err1 := strconv.Atoi(c.Param("skip"))
	limit, err2 := strconv.Atoi(c.Param("limit"))
	if err1 != nil || err2 != nil || skip < 0 || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip/limit"})
		return
	}

	q := database.DB.Model(&exhibitions.Exhibition{})
	if c.DefaultQuery("sort_data_asc", "true") == "true" {
		q = q.Order("end_date ASC")
	} else {
		q = q.Order("end_date DESC")
	}
	if c.DefaultQuery("sort_data_title", "true") == "true" {
		q = q.Order("name ASC")
	} else {
		q = q.Order("name DESC")
	}

	var rows []exhibitions.Exhibition
	if err := q.Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exhibitions fetched successfully", "data": rows})
}

// ------------------------------
// GET /get/exhibitions/art_object/:exhibition_id
//
// The exhibition plus the image-bearing gallery view of its objects,
// resolved through the association table in one batch.
// ------------------------------
func ListExhibitionArtObjects(c *gin.Context) {
	id := c.Param("exhibition_id")

	var ex exhibitions.Exhibition
	if err := database.DB.First(&ex, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	var objectIDs []string
	err := database.DB.Model(&exhibitions.ExhibitionArtObject{}).
		Where("exhibition_id = ?", id).
		Pluck("art_object_id", &objectIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load associations"})
		return
	}

	var rows []objects.ArtObject
	if len(objectIDs) > 0 {
		err = database.DB.Model(&objects.ArtObject{}).
			Preload("Sculpture").
			Preload("Painting").
			Preload("OtherArt").
			Where("id IN ?", objectIDs).
			Find(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load art objects"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exhibition found successfully",
		"data": gin.H{
			"exhibition":  ex,
			"art_objects": galleryProjections(rows),
		},
	})
}

// ------------------------------
// DELETE /delete/exhibition/:exhibition_id
//
// Associations cascade; the linked art objects themselves stay.
// ------------------------------
func DeleteExhibition(c *gin.Context) {
	id := c.Param("exhibition_id")

	var ex exhibitions.Exhibition
	if err := database.DB.First(&ex, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}

	for i := range ex.Images {
		_ = storage.Default.Destroy(storage.ImageKey(ex.ID, i, "exhibition"))
	}

	if err := database.DB.Delete(&ex).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exhibition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exhibition deleted successfully"})
}

type galleryItem struct {
	ID         string       `json:"id"`
	ObjectType objects.Kind `json:"object_type"`
	Images     []string     `json:"images"`
}

func galleryProjections(rows []objects.ArtObject) []galleryItem {
	out := make([]galleryItem, 0, len(rows))
	for i := range rows {
		var images []string
		switch {
		case rows[i].ObjectType == objects.KindSculpture && rows[i].Sculpture != nil:
			images = rows[i].Sculpture.Images
		case rows[i].ObjectType == objects.KindPainting && rows[i].Painting != nil:
			images = rows[i].Painting.Images
		case rows[i].ObjectType == objects.KindOther && rows[i].OtherArt != nil:
			images = rows[i].OtherArt.Images
		}
		if len(images) == 0 {
			continue
		}
		out = append(out, galleryItem{ID: rows[i].ID, ObjectType: rows[i].ObjectType, Images: images})
	}
	return out
}
