package admin

import (
	"net/http"

	"museum-app/database"
	"museum-app/internal/domain/collections"
	"museum-app/internal/domain/exhibitions"
	"museum-app/internal/domain/objects"
	"museum-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	AuthProvider string  `json:"auth_provider"`
	IsActive     bool    `json:"is_active"`
	IsAuth       bool    `json:"is_auth"`
	Image        *string `json:"image,omitempty"`
}

type CatalogStats struct {
	TotalUsers       int            `json:"total_users"`
	TotalArtObjects  int            `json:"total_art_objects"`
	ObjectsPerKind   map[string]int `json:"objects_per_kind"`
	TotalExhibitions int            `json:"total_exhibitions"`
	OpenLoans        int            `json:"open_loans"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("username ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range list {
		adminUsers = append(adminUsers, AdminUser{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
			IsActive:     u.IsActive,
			IsAuth:       u.IsAuth,
			Image:        u.Image,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func GetCatalogStats(c *gin.Context) {
	var stats CatalogStats

	var totalUsers, totalObjects, totalExhibitions, openLoans int64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&objects.ArtObject{}).Count(&totalObjects)
	database.DB.Model(&exhibitions.Exhibition{}).Count(&totalExhibitions)
	database.DB.Model(&collections.BorrowedArtObject{}).
		Where("date_returned IS NULL").Count(&openLoans)

	stats.TotalUsers = int(totalUsers)
	stats.TotalArtObjects = int(totalObjects)
	stats.TotalExhibitions = int(totalExhibitions)
	stats.OpenLoans = int(openLoans)

	type KindCount struct {
		ObjectType string
		Count      int
	}
	var counts []KindCount

	database.DB.
		Table("art_objects").
		Select("object_type, COUNT(id) as count").
		Group("object_type").
		Scan(&counts)

	stats.ObjectsPerKind = map[string]int{}
	for _, k := range counts {
		stats.ObjectsPerKind[k.ObjectType] = k.Count
	}

	c.JSON(http.StatusOK, stats)
}

func UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !users.ValidRole(body.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	res := database.DB.Model(&users.User{}).Where("id = ?", userID).Update("role", body.Role)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "role updated", "role": body.Role})
}
