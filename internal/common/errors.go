package common

import "errors"

// Business logic errors
var (
	// Post errors
	ErrUserNotFound   = errors.New("user does not exist")
	ErrNoPostsForUser = errors.New("no posts found for this user")

	// Booking errors
	ErrNoBookingsForUser = errors.New("no bookings found for this user")
	ErrBookingNotFound   = errors.New("booking not found")

	// Like errors
	ErrNoLikesForUser = errors.New("no likes found for this user")
)
