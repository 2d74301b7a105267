package auth

import "time"

// User is the authenticated identity. Name and AvatarURL are optional
// profile metadata shown alongside the account-creation date.
type User struct {
	ID           uint64    `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"type:text;not null;default:''"`
	AvatarURL    string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
}
