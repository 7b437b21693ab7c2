package domain

import "time"

// Booking is a row in the bookings table. Date and Time travel as opaque
// strings end to end; the service never parses them. Active is a soft-delete
// flag: deactivated rows stay in place and can be reactivated by a later
// booking for the same (user_id, post_id).
type Booking struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	PostID    int       `gorm:"column:post_id" json:"post_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// TableName overrides the GORM table name
func (Booking) TableName() string {
	return "bookings"
}

// CreateBookingRequest is the POST /bookings body.
type CreateBookingRequest struct {
	UserID   int    `json:"user_id"`
	PostID   int    `json:"post_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// UpdateBookingRequest is the PUT /bookings/:user_id body. ID is the booking
// primary key; the owning user comes from the path.
type UpdateBookingRequest struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}
