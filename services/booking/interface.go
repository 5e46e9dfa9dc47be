package booking

import (
	bookingRepo "carexyz/database/repository/booking"
	serviceRepo "carexyz/database/repository/service"
	"carexyz/models"
)

// CreateBookingInput is the booking form submitted after payment confirmation.
type CreateBookingInput struct {
	ServiceID       string  `json:"serviceId" binding:"required"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Duration        string  `json:"duration" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	TotalCost       float64 `json:"totalCost" binding:"required"`
	Notes           string  `json:"notes"`
	PaymentIntentID string  `json:"paymentIntentId"`
}

// BookingService owns booking creation, the customer cancel path and the
// admin status workflow.
type BookingService interface {
	// CreateBooking validates the intake form, verifies totalCost against the
	// stored service price and persists the booking with status pending.
	CreateBooking(userID string, in CreateBookingInput) (*models.Booking, error)
	// GetUserBookings returns the owner's bookings, newest first.
	GetUserBookings(userID string) ([]models.Booking, error)
	// CancelOwn cancels the caller's booking while it is still pending or
	// confirmed. Any other state is a conflict; another owner is forbidden.
	CancelOwn(userID, bookingID string) (*models.Booking, error)
	// GetAllBookings returns every booking for the admin order list.
	GetAllBookings(status models.BookingStatus) ([]models.Booking, error)
	// Transition applies an admin status change after checking the allowed
	// edges. actor is recorded in the activity log.
	Transition(actor, bookingID string, to models.BookingStatus) (*models.Booking, error)
}

// ActivityAppender records admin-observable events as a side effect.
type ActivityAppender interface {
	Append(entry *models.ActivityLog) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	Activity    ActivityAppender
}
