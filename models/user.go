package models

import "time"

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	Role         string    `gorm:"size:20;default:user" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	BonusPoints  int       `gorm:"default:0" json:"bonus_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPrivileged reports whether the user may act on resources owned by others.
func (u User) IsPrivileged() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}
