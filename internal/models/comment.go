package models

import "time"

// Comment is a reply to a Post. WriterID references the owning account.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	WriterID  uint      `json:"writer_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
