package artists

import (
	"net/http"
	"strconv"
	"strings"

	"museum-app/database"
	"museum-app/internal/domain/artists"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
)

const searchLimit = 5

// ------------------------------
// POST /create/artist
//
// Bulk create. A name collision is a no-op with notice, not an error: the
// matched record lands in artist_exists. Per-item validation failures do not
// block the rest of the batch.
// ------------------------------
func CreateArtists(c *gin.Context) {
	var inputs []CreateArtistInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := BatchCreateResponse{
		NewArtists:   make([]artists.Artist, 0, len(inputs)),
		ArtistExists: []artists.Artist{},
		Failures:     []types.BatchFailure{},
	}

	for i, in := range inputs {
		a, err := in.toModel()
		if err != nil {
			resp.Failures = append(resp.Failures, types.FailureAt(i, err))
			continue
		}

		// case-sensitive exact match; also catches duplicates earlier in
		// the same batch since items commit one by one
		var existing artists.Artist
		if err := database.DB.Where("name = ?", a.Name).First(&existing).Error; err == nil {
			resp.ArtistExists = append(resp.ArtistExists, existing)
			continue
		}

		if err := database.DB.Create(a).Error; err != nil {
			resp.Failures = append(resp.Failures, types.FailureAt(i, types.Conflict("artist %q: %v", a.Name, err)))
			continue
		}
		resp.NewArtists = append(resp.NewArtists, *a)
	}

	c.JSON(http.StatusOK, gin.H{"message": "artist batch processed", "data": resp})
}

// ------------------------------
// GET /get/artist/all/:skip/:limit
// ------------------------------
func ListArtists(c *gin.Context) {
	skip, err1 := strconv.Atoi(c.Param("skip"))
	limit, err2 := strconv.Atoi(c.Param("limit"))
	if err1 != nil || err2 != nil || skip < 0 || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip/limit"})
		return
	}

	q := database.DB.Model(&artists.Artist{})
	if c.DefaultQuery("sort_by_dob", "true") == "true" {
		q = q.Order("date_of_birth ASC")
	} else {
		q = q.Order("date_of_birth DESC")
	}
	if c.DefaultQuery("sort_by_name", "true") == "true" {
		q = q.Order("name ASC")
	} else {
		q = q.Order("name DESC")
	}

	var rows []artists.Artist
	if err := q.Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artists fetched successfully", "data": rows})
}

// ------------------------------
// GET /get/artist/id/:artist_id
// ------------------------------
func GetArtist(c *gin.Context) {
	var artist artists.Artist
	if err := database.DB.First(&artist, "id = ?", c.Param("artist_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist fetched successfully", "data": artist})
}

// ------------------------------
// GET /get/artist/all/ids
// ------------------------------
func ListArtistIDs(c *gin.Context) {
	var ids []string
	if err := database.DB.Model(&artists.Artist{}).Pluck("id", &ids).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ids"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ids})
}

// ------------------------------
// GET /get/artist/name/:artist_name
// ------------------------------
func SearchArtists(c *gin.Context) {
	term := strings.ToLower(c.Param("artist_name"))

	var rows []artists.Artist
	err := database.DB.
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Limit(searchLimit).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artists fetched successfully", "data": rows})
}

// ------------------------------
// DELETE /delete/artist/:artist_id
//
// Owned art objects survive with artist_id set to null.
// ------------------------------
func DeleteArtist(c *gin.Context) {
	id := c.Param("artist_id")

	var artist artists.Artist
	if err := database.DB.First(&artist, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if err := database.DB.Delete(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}
