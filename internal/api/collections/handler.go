package collections

import (
	"errors"
	"net/http"
	"strconv"

	"museum-app/database"
	"museum-app/internal/domain/collections"
	"museum-app/internal/domain/objects"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// POST /create/collection/new_collection
// ------------------------------
func CreateCollection(c *gin.Context) {
	var in CreateCollectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	col := collections.Collection{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Address:     in.Address,
		Contact:     in.Contact,
	}
	if err := database.DB.Create(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": col.Name + " collection created successfully", "data": col})
}

// ------------------------------
// POST /create/collection/borrowed
//
// Bulk loan records, best effort per item. Besides id existence and date
// ordering, an object with an open loan (date_returned null) cannot be
// borrowed again until it is returned.
// ------------------------------
func CreateBorrowed(c *gin.Context) {
	var inputs []BorrowedInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := BatchResponse[collections.BorrowedArtObject]{
		Created:  []collections.BorrowedArtObject{},
		Failures: []types.BatchFailure{},
	}

	for i, in := range inputs {
		row, err := createBorrowed(database.DB, in)
		if err != nil {
			resp.Failures = append(resp.Failures, types.FailureAt(i, err))
			continue
		}
		resp.Created = append(resp.Created, *row)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Borrowed collections processed", "data": resp})
}

func createBorrowed(db *gorm.DB, in BorrowedInput) (*collections.BorrowedArtObject, error) {
	b, err := in.toModel()
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&objects.ArtObject{}).Where("id = ?", b.ArtObjectID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFound("art object %s not found", b.ArtObjectID)
	}
	if err := db.Model(&collections.Collection{}).Where("id = ?", b.CollectionID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFound("collection %s not found", b.CollectionID)
	}

	// one open loan per object, application-enforced
	if b.DateReturned == nil {
		if err := db.Model(&collections.BorrowedArtObject{}).
			Where("art_object_id = ? AND date_returned IS NULL", b.ArtObjectID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, types.Conflict("art object %s is already on loan", b.ArtObjectID)
		}
	}

	if err := db.Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// ------------------------------
// POST /create/collection/permanent
// ------------------------------
func CreatePermanent(c *gin.Context) {
	var inputs []PermanentInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := BatchResponse[collections.PermanentCollection]{
		Created:  []collections.PermanentCollection{},
		Failures: []types.BatchFailure{},
	}

	for i, in := range inputs {
		row, err := createPermanent(database.DB, in)
		if err != nil {
			resp.Failures = append(resp.Failures, types.FailureAt(i, err))
			continue
		}
		resp.Created = append(resp.Created, *row)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permanent collections processed", "data": resp})
}

func createPermanent(db *gorm.DB, in PermanentInput) (*collections.PermanentCollection, error) {
	p, err := in.toModel()
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&objects.ArtObject{}).Where("id = ?", p.ArtObjectID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFound("art object %s not found", p.ArtObjectID)
	}

	if err := db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.Conflict("art object %s already has a permanent record", p.ArtObjectID)
		}
		return nil, err
	}
	return p, nil
}

// ------------------------------
// PUT /update/collection/borrowed/:id/return  {"date_returned": "YYYY-MM-DD"}
//
// Closes a loan. The date must not precede date_borrowed.
// ------------------------------
func ReturnBorrowed(c *gin.Context) {
	var body struct {
		DateReturned string `json:"date_returned" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	returned, err := parseDate(body.DateReturned)
	if err != nil {
		c.JSON(types.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	var row collections.BorrowedArtObject
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Borrowed record not found"})
		return
	}
	if returned.Before(row.DateBorrowed) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_returned precedes date_borrowed"})
		return
	}

	if err := database.DB.Model(&row).Update("date_returned", returned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update borrowed record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Borrowed record updated successfully", "data": row})
}

// ------------------------------
// PUT /update/collection/permanent/:id/status  {"status": "display|loan|stored"}
// ------------------------------
func UpdatePermanentStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := collections.PermanentStatus(body.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var row collections.PermanentCollection
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Permanent record not found"})
		return
	}

	if err := database.DB.Model(&row).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update permanent record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permanent record updated successfully", "data": row})
}

// ------------------------------
// GET /get/collections/permanent/:permanents_id/:skip/:limit
//
// Permanent holdings grouped by object kind, specializations joined in the
// same round trip.
// ------------------------------
func GetPermanent(c *gin.Context) {
	skip, err1 := strconv.Atoi(c.Param("skip"))
	limit, err2 := strconv.Atoi(c.Param("limit"))
	if err1 != nil || err2 != nil || skip < 0 || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip/limit"})
		return
	}

	var rows []collections.PermanentCollection
	err := database.DB.Model(&collections.PermanentCollection{}).
		Where("id = ?", c.Param("permanents_id")).
		Preload("ArtObject.Sculpture").
		Preload("ArtObject.Painting").
		Preload("ArtObject.OtherArt").
		Offset(skip).Limit(limit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load permanent collections"})
		return
	}

	grouped := map[string][]*objects.ArtObject{
		"sculpture": {},
		"painting":  {},
		"other":     {},
	}
	for i := range rows {
		o := rows[i].ArtObject
		if o == nil {
			continue
		}
		switch {
		case o.Sculpture != nil:
			grouped["sculpture"] = append(grouped["sculpture"], o)
		case o.Painting != nil:
			grouped["painting"] = append(grouped["painting"], o)
		case o.OtherArt != nil:
			grouped["other"] = append(grouped["other"], o)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permanent collections found successfully", "data": grouped})
}
