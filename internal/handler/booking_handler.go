package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/domain"
	"github.com/kakigather/gather-backend/internal/service"
	"github.com/kakigather/gather-backend/pkg/logger"
)

// bookingDeleteErr is the plain-text body the legacy clients expect from a
// failed booking delete (note the original's spelling).
const bookingDeleteErr = "An error occured, please try again."

// BookingHandler handles booking requests
type BookingHandler struct {
	service service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// ListByUser handles GET /bookings/user/:user_id
func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	bookings, err := h.service.ListByUser(userID)
	if err != nil {
		if errors.Is(err, common.ErrNoBookingsForUser) {
			common.JSONError(c, http.StatusNotFound, "No bookings found for this user")
			return
		}
		logger.GetLogger().Error().Err(err).Int("user_id", userID).Msg("list bookings by user")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Delete handles DELETE /bookings/:user_id. The path segment is named
// user_id but carries the booking id; kept for client compatibility.
// Responds 200 whether or not a row matched.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		common.PlainError(c, bookingDeleteErr)
		return
	}

	if err := h.service.Delete(id); err != nil {
		logger.GetLogger().Error().Err(err).Int("booking_id", id).Msg("delete booking")
		common.PlainError(c, bookingDeleteErr)
		return
	}

	common.Message(c, "Booking Deleted Successfully")
}

// CreateOrReactivate handles POST /bookings. An inactive booking for the
// same (user_id, post_id) is reused; otherwise a new active row is inserted.
func (h *BookingHandler) CreateOrReactivate(c *gin.Context) {
	var req domain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	booking, err := h.service.CreateOrReactivate(&req)
	if err != nil {
		logger.GetLogger().Error().Err(err).
			Int("user_id", req.UserID).Int("post_id", req.PostID).
			Msg("create booking")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateSchedule handles PUT /bookings/:user_id. The booking id comes from
// the body; a miss answers 301, which is what the legacy clients handle.
func (h *BookingHandler) UpdateSchedule(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req domain.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	booking, err := h.service.UpdateSchedule(userID, &req)
	if err != nil {
		if errors.Is(err, common.ErrBookingNotFound) {
			common.JSONError(c, http.StatusMovedPermanently, "Booking not found")
			return
		}
		logger.GetLogger().Error().Err(err).
			Int("user_id", userID).Int("booking_id", req.ID).
			Msg("update booking")
		common.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, booking)
}
