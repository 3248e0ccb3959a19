package users

import (
	"net/http"

	"museum-app/database"
	"museum-app/internal/domain/users"
	"museum-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (users.User, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return users.User{}, false
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return users.User{}, false
	}
	return user, true
}

// GET /user/me
func GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		AuthProvider: user.AuthProvider,
		IsAuth:       user.IsAuth,
		Image:        user.Image,
	})
}

// ------------------------------
// Profile image
// ------------------------------

// POST /user/profile/image  (multipart "file")
func UploadProfileImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()

	url, err := storage.Default.Upload(f, storage.ProfileKey(user.ID))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload image"})
		return
	}

	if err := database.DB.Model(&user).Update("image", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile image updated", "image": url})
}

// PUT /user/profile/image reuses the upload path: same key, new bytes.
func ReplaceProfileImage(c *gin.Context) {
	UploadProfileImage(c)
}

// GET /user/profile/image
func GetProfileImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if user.Image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": *user.Image})
}

// DELETE /user/profile/image
func DeleteProfileImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if user.Image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile image"})
		return
	}

	if err := storage.Default.Destroy(storage.ProfileKey(user.ID)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete image"})
		return
	}
	if err := database.DB.Model(&user).Update("image", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile image deleted"})
}

// ------------------------------
// Account
// ------------------------------

// PUT /user/update_username  {"username": "..."}
func UpdateUsername(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&user).Update("username", body.Username).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "username updated", "username": body.Username})
}

// DELETE /user/delete
func DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	//  stored image goes first; the row delete cascades the auth token
	if user.Image != nil {
		_ = storage.Default.Destroy(storage.ProfileKey(user.ID))
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}
