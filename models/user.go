package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles. Every user is either a property-seeking client or an agent/landlord
// publishing listings.
const (
	RoleAgentLandlord = "AGENT_LANDLORD"
	RoleClient        = "CLIENT"
)

// User is a platform account
type User struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	Username     string       `json:"username" gorm:"uniqueIndex"`
	Email        string       `json:"email" gorm:"uniqueIndex"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	Avatar       string       `json:"avatar"`
	PushToken    string       `json:"-"`
	CreatedDate  time.Time    `json:"createdDate"`
	DeletedDate  sql.NullTime `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// SetPassword hashes the plaintext password onto the user
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
