package domain

import "time"

// Post is a row in the posts table. Field names and JSON keys mirror the
// legacy wire format; rows are returned to clients as-is.
type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the GORM table name
func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest is the POST /posts body.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int    `json:"user_id"`
}
