package models

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// allowedTransitions encodes the forward-only happy path plus cancellation
// from any non-terminal state. completed and cancelled have no exits.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:  {StatusInProgress: true, StatusCancelled: true},
	StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CustomerCancellable reports whether the owning customer may still cancel.
// Customers lose the self-serve cancel once care is in progress.
func (s BookingStatus) CustomerCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking is a customer's scheduled care-service request.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"userId" json:"userId"` // identity-provider uid of the owner
	ServiceID       string        `bson:"serviceId" json:"serviceId"`
	ServiceName     string        `bson:"serviceName" json:"serviceName"` // denormalized snapshot
	Date            string        `bson:"date" json:"date"`               // "YYYY-MM-DD"
	Time            string        `bson:"time" json:"time"`               // "HH:MM"
	Duration        string        `bson:"duration" json:"duration"`       // human string, e.g. "4 hours"
	Location        string        `bson:"location" json:"location"`
	TotalCost       float64       `bson:"totalCost" json:"totalCost"`
	Status          BookingStatus `bson:"status" json:"status"`
	Notes           string        `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
