package users

import "time"

// AuthToken is the short numeric account-authorization token mailed to a
// user. One live token per user; valid for 24 hours from issuance.
type AuthToken struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UserID    string `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User      *User  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Token     string `gorm:"type:varchar(6);not null" json:"-"`
	CreatedAt time.Time
}

const TokenTTL = 24 * time.Hour

func (t AuthToken) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) > TokenTTL
}
