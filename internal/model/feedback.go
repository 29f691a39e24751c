package model

import "time"

// Feedback is a single feedback entry owned by a user.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Username  string    `json:"username" gorm:"size:20;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the singular table name used by the schema.
func (Feedback) TableName() string {
	return "feedback"
}
