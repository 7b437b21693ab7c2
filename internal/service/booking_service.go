package service

import (
	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/domain"
	"github.com/kakigather/gather-backend/internal/repository"
)

// BookingService business logic for bookings
type BookingService interface {
	ListByUser(userID int) ([]*domain.Booking, error)
	Delete(id int) error
	CreateOrReactivate(req *domain.CreateBookingRequest) (*domain.Booking, error)
	UpdateSchedule(userID int, req *domain.UpdateBookingRequest) (*domain.Booking, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// ListByUser retrieves a user's bookings. An empty result is reported as
// common.ErrNoBookingsForUser; the legacy API treats it as a 404.
func (s *bookingService) ListByUser(userID int) ([]*domain.Booking, error) {
	bookings, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, common.ErrNoBookingsForUser
	}
	return bookings, nil
}

// Delete removes a booking by id. Idempotent.
func (s *bookingService) Delete(id int) error {
	return s.repo.DeleteByID(id)
}

// CreateOrReactivate reuses the inactive booking for (user_id, post_id) if
// one exists, otherwise inserts a new active row.
//
// The lookup and the write are two separate statements with no transaction
// around them, matching the legacy service: two concurrent calls for the
// same pair can both insert.
func (s *bookingService) CreateOrReactivate(req *domain.CreateBookingRequest) (*domain.Booking, error) {
	prev, err := s.repo.FindInactive(req.UserID, req.PostID)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		return s.repo.Activate(prev.ID)
	}

	booking := &domain.Booking{
		UserID:   req.UserID,
		PostID:   req.PostID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Active:   true,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateSchedule rewrites date/time/duration for a booking the user owns.
// A booking id that does not belong to userID is reported as
// common.ErrBookingNotFound without touching any row.
func (s *bookingService) UpdateSchedule(userID int, req *domain.UpdateBookingRequest) (*domain.Booking, error) {
	prev, err := s.repo.FindOwned(userID, req.ID)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, common.ErrBookingNotFound
	}
	return s.repo.UpdateSchedule(userID, req.ID, req.Date, req.Time, req.Duration)
}
