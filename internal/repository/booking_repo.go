package repository

import (
	"errors"

	"github.com/kakigather/gather-backend/internal/domain"
	"gorm.io/gorm"
)

// BookingRepository data access for bookings
type BookingRepository interface {
	ListByUser(userID int) ([]*domain.Booking, error)
	DeleteByID(id int) error

	// FindInactive returns the inactive booking for (userID, postID),
	// or nil when there is none.
	FindInactive(userID, postID int) (*domain.Booking, error)
	Activate(id int) (*domain.Booking, error)
	Create(booking *domain.Booking) error

	// FindOwned returns the booking with the given id only if it belongs
	// to userID, or nil when there is no match.
	FindOwned(userID, id int) (*domain.Booking, error)
	UpdateSchedule(userID, id int, date, timeOfDay string, duration int) (*domain.Booking, error)
}

// bookingRepository GORM implementation
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// ListByUser fetches all bookings (active or not) for the given user.
func (r *bookingRepository) ListByUser(userID int) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	err := r.db.Where("user_id = ?", userID).Find(&bookings).Error
	return bookings, err
}

// DeleteByID removes a booking row. Deleting a missing id is not an error.
func (r *bookingRepository) DeleteByID(id int) error {
	return r.db.Delete(&domain.Booking{}, id).Error
}

func (r *bookingRepository) FindInactive(userID, postID int) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.Where("user_id = ? AND post_id = ? AND active = ?", userID, postID, false).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Activate flips a booking back to active and returns the updated row.
func (r *bookingRepository) Activate(id int) (*domain.Booking, error) {
	if err := r.db.Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("active", true).Error; err != nil {
		return nil, err
	}
	var booking domain.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts an active booking. GORM fills ID and CreatedAt.
func (r *bookingRepository) Create(booking *domain.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindOwned(userID, id int) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateSchedule rewrites date, time and duration for the booking matching
// (userID, id) and returns the updated row.
func (r *bookingRepository) UpdateSchedule(userID, id int, date, timeOfDay string, duration int) (*domain.Booking, error) {
	updates := map[string]interface{}{
		"date":     date,
		"time":     timeOfDay,
		"duration": duration,
	}
	if err := r.db.Model(&domain.Booking{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	var booking domain.Booking
	if err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
