package booking

import (
	"fmt"
	"math"
	"time"

	"carexyz/models"
	"carexyz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the intake form and persists a pending booking.
// The caller has already confirmed payment client-side; the paymentIntentId
// travels with the record for reconciliation.
func (s *DefaultBookingService) CreateBooking(userID string, in CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if fields := validateIntake(in, time.Now()); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	svc, err := s.ServiceRepo.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil || !svc.Active {
		return nil, &NotFoundError{Resource: "service", ID: in.ServiceID}
	}

	hours, err := ParseDurationHours(in.Duration)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"duration": "duration must be a positive hour count"}}
	}

	// The client-submitted totalCost must match the stored price exactly.
	expected := svc.PricePerHour * float64(hours)
	if math.Abs(expected-in.TotalCost) > 0.01 {
		return nil, &ValidationError{Fields: map[string]string{
			"totalCost": fmt.Sprintf("totalCost must equal %.2f", expected),
		}}
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Title,
		Date:            in.Date,
		Time:            in.Time,
		Duration:        in.Duration,
		Location:        in.Location,
		TotalCost:       expected,
		Status:          models.StatusPending,
		Notes:           in.Notes,
		PaymentIntentID: in.PaymentIntentID,
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Activity != nil {
		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivityOrderPlaced,
			Actor:  userID,
			Detail: fmt.Sprintf("%s booked for %s %s (%s)", b.ServiceName, b.Date, b.Time, b.Duration),
			RefID:  b.ID,
		}
		if err := s.Activity.Append(entry); err != nil {
			logger.Warn("failed to record order_placed activity", zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("userId", userID),
		zap.Float64("totalCost", b.TotalCost))
	return b, nil
}

// GetUserBookings returns the owner's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// CancelOwn cancels the caller's own booking while the status guard allows it.
func (s *DefaultBookingService) CancelOwn(userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.UserID != userID {
		return nil, &ForbiddenError{Message: "booking belongs to another user"}
	}
	if !b.Status.CustomerCancellable() {
		return nil, &ConflictError{Message: fmt.Sprintf("booking in status %q can no longer be cancelled", b.Status)}
	}

	matched, err := s.Repo.UpdateStatusIf(bookingID, b.Status, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	if !matched {
		// The status moved between our read and the conditional write.
		return nil, &ConflictError{Message: "booking status changed, please refresh"}
	}

	b.Status = models.StatusCancelled
	return b, nil
}

// GetAllBookings returns every booking for the admin order list.
func (s *DefaultBookingService) GetAllBookings(status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.GetAll(status)
}

// Transition applies an admin status change along the allowed edges.
func (s *DefaultBookingService) Transition(actor, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Status.IsTerminal() {
		return nil, &ConflictError{Message: fmt.Sprintf("booking is %s and cannot change status", b.Status)}
	}
	if !models.CanTransition(b.Status, to) {
		return nil, &ConflictError{Message: fmt.Sprintf("cannot transition booking from %q to %q", b.Status, to)}
	}

	matched, err := s.Repo.UpdateStatusIf(bookingID, b.Status, to)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, &ConflictError{Message: "booking status changed, please refresh"}
	}

	if s.Activity != nil {
		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivityOrderStatusChanged,
			Actor:  actor,
			Detail: fmt.Sprintf("order status %s -> %s", b.Status, to),
			RefID:  b.ID,
		}
		if err := s.Activity.Append(entry); err != nil {
			logger.Warn("failed to record order_status_changed activity", zap.Error(err))
		}
	}

	b.Status = to
	return b, nil
}
