package bookingRepo

import (
	"carexyz/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves the owner's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetAll retrieves all bookings, newest first, optionally filtered by status.
	GetAll(status models.BookingStatus) ([]models.Booking, error)
	// GetByPaymentIntent retrieves the booking referencing a payment intent, if any.
	GetByPaymentIntent(paymentIntentID string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// UpdateStatusIf sets the status only when the stored status still equals
	// from. Returns false when no document matched (missing booking or a
	// concurrent transition already moved it).
	UpdateStatusIf(id string, from, to models.BookingStatus) (bool, error)
}
