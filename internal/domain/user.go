package domain

// User is a row in the pre-existing users table. The service never writes
// users; it only checks existence by id and joins on username for likes.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `json:"username"`
}

// TableName overrides the GORM table name
func (User) TableName() string {
	return "users"
}
