package model

import "time"

// User represents a registered account. The username is the natural primary key;
// uniqueness of registrations rides on it.
type User struct {
	Username     string    `json:"username" gorm:"primaryKey;size:20"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"` // Never expose in JSON
	Email        string    `json:"email" gorm:"size:50;not null"`
	FirstName    string    `json:"first_name" gorm:"size:30;not null"`
	LastName     string    `json:"last_name" gorm:"size:30;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Feedback []Feedback `json:"feedback,omitempty" gorm:"foreignKey:Username;references:Username"`
}

// FullName is the display name used on the profile page.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
