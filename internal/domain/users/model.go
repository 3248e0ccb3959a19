package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Username string  `gorm:"type:varchar(255);not null;index" json:"username"`
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `json:"-"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	IsAuth   bool   `gorm:"not null;default:false" json:"is_auth"`

	// single profile image URL in object storage, key "{id}:_:profile"
	Image *string `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
