package models

import "time"

// Post is a board entry written by an account.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WriterID  uint      `json:"writer_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"type:varchar(200)"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
