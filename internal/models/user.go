package models

import "time"

// User is the credential store; login only, no profile data.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Password  string `gorm:"not null" json:"-"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}
