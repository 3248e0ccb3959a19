package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"museum-app/database"
	"museum-app/internal/domain/users"
	"museum-app/internal/infra/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func generateAuthToken() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand on a working system does not fail; bail loudly if it does
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// issueAuthToken replaces any previous token for the user and returns the
// fresh one.
func issueAuthToken(db *gorm.DB, userID string) (string, error) {
	db.Where("user_id = ?", userID).Delete(&users.AuthToken{})

	token := generateAuthToken()
	row := users.AuthToken{UserID: userID, Token: token}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

// validateAuthToken compares the submitted token against the stored one
// inside the 24 hour window.
func validateAuthToken(db *gorm.DB, userID string, token string, now time.Time) bool {
	var row users.AuthToken
	if err := db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return false
	}
	if row.Expired(now) {
		return false
	}
	return row.Token == token
}

// ------------------------------
// GET /user/authorize/generate_new_token?user_id=&email=
// ------------------------------
func GenerateNewToken(c *gin.Context) {
	userID := c.Query("user_id")
	email := c.Query("email")
	if userID == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and email are required"})
		return
	}

	token, err := issueAuthToken(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	_ = mailer.SendAuthToken(email, token)

	c.JSON(http.StatusOK, gin.H{"message": "new token generated successfully"})
}

// ------------------------------
// POST /user/authorize/validate_token  {"user_id": "...", "token": "123456"}
//
// A mismatch or expired token triggers a re-issue so the user always gets a
// usable token mailed back.
// ------------------------------
func ValidateToken(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id" binding:"required"`
		Token  string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if validateAuthToken(database.DB, body.UserID, body.Token, time.Now()) {
		if err := database.DB.Model(&user).Update("is_auth", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authorize user"})
			return
		}
		database.DB.Where("user_id = ?", body.UserID).Delete(&users.AuthToken{})
		c.JSON(http.StatusOK, gin.H{"message": "user authorize successfully", "is_auth": true})
		return
	}

	newToken, err := issueAuthToken(database.DB, body.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to re-issue token"})
		return
	}
	_ = mailer.Send(user.Email, "Authorize your account",
		fmt.Sprintf("The old token is expired, kindly use this new token: %s\nvalid for 24 hours", newToken))

	c.JSON(http.StatusUnauthorized, gin.H{"message": "User authorization failed, kindly check your email", "is_auth": false})
}
