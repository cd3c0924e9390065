package model

import "time"

// User represents a registered account. Passwords are stored only as bcrypt
// hashes; the username carries a unique index so duplicate registrations fail
// at the storage layer even under concurrency.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
