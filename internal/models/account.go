package models

import "time"

// Roles an account can carry.
const (
	RoleUser = "USER"
)

// Account represents a registered user of Life Fit.
type Account struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password    string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Nickname    string    `json:"nickname" gorm:"type:varchar(100)"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(30)"`
	Role        string    `json:"role" gorm:"type:varchar(20);not null"`
	SocialID    *int64    `json:"social_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountFields is the field set used to build a new Account.
type AccountFields struct {
	Email          string
	HashedPassword string
	Nickname       string
	Name           string
	PhoneNumber    string
	Role           string
	SocialID       *int64
}

// NewAccount builds an unsaved Account. An empty role falls back to RoleUser.
func NewAccount(f AccountFields) *Account {
	role := f.Role
	if role == "" {
		role = RoleUser
	}
	return &Account{
		Email:       f.Email,
		Password:    f.HashedPassword,
		Nickname:    f.Nickname,
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Role:        role,
		SocialID:    f.SocialID,
	}
}
