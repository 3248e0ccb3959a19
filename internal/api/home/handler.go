package home

import (
	"net/http"

	"museum-app/database"
	objectsapi "museum-app/internal/api/objects"
	"museum-app/internal/domain/exhibitions"
	"museum-app/internal/domain/objects"

	"github.com/gin-gonic/gin"
)

const (
	objectsPerKind  = 10
	exhibitionCount = 5
)

// ------------------------------
// GET /get/homepage/data
//
// Four independent bounded queries, not a union: the first 10 objects of
// each kind (year ascending, title tiebreak) plus the 5 soonest-ending
// exhibitions.
// ------------------------------
func GetHomepageData(c *gin.Context) {
	kinds := []objects.Kind{objects.KindSculpture, objects.KindPainting, objects.KindOther}
	lists := make(map[objects.Kind][]objects.ArtObject, len(kinds))

	for _, kind := range kinds {
		var rows []objects.ArtObject
		q := objectsapi.CompositeSort(objectsapi.KindQuery(database.DB, kind), true, true)
		if err := q.Limit(objectsPerKind).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load homepage data"})
			return
		}
		lists[kind] = rows
	}

	var soonest []exhibitions.Exhibition
	err := database.DB.Model(&exhibitions.Exhibition{}).
		Order("end_date ASC").
		Limit(exhibitionCount).
		Find(&soonest).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load homepage data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Home page data fetched successfully",
		"data": gin.H{
			"sculpture_data":  lists[objects.KindSculpture],
			"painting_data":   lists[objects.KindPainting],
			"other_data":      lists[objects.KindOther],
			"exhibition_data": soonest,
		},
	})
}
