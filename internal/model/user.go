package model

import (
	"time"
)

// Role is the permission tier carried in session tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a cashier or manager account. The user id is the natural
// key; passwords are stored only as bcrypt hashes.
type User struct {
	UserID       string    `json:"userId" gorm:"primaryKey;size:50"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
