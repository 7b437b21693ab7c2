package domain

// Like is a row in the likes table. Likes are created elsewhere; this service
// only lists them and flips Active off (soft removal).
type Like struct {
	ID     int  `gorm:"primaryKey" json:"id"`
	UserID int  `gorm:"column:user_id" json:"user_id"`
	PostID int  `gorm:"column:post_id" json:"post_id"`
	Active bool `json:"active"`
}

// TableName overrides the GORM table name
func (Like) TableName() string {
	return "likes"
}

// PostLiker is one row of the likes↔users join returned by
// GET /likes/post/:post_id. Column aliases match the legacy response keys.
type PostLiker struct {
	Username string `json:"username"`
	UserID   int    `gorm:"column:user_id" json:"user_id"`
	LikesID  int    `gorm:"column:likes_id" json:"likes_id"`
}
