package models

import "time"

// Activity event types written by server-side handlers.
const (
	ActivityOrderPlaced        = "order_placed"
	ActivityOrderStatusChanged = "order_status_changed"
	ActivityUserUpdated        = "user_updated"
	ActivityUserDeleted        = "user_deleted"
	ActivityPaymentUnreconcile = "payment_unreconciled"
	ActivitySeed               = "seed"
)

// ActivityLog is an append-only record of admin-observable events.
// Entries are created by handlers as a side effect and never mutated.
type ActivityLog struct {
	ID        string    `bson:"id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Actor     string    `bson:"actor" json:"actor"` // uid or "system"
	Detail    string    `bson:"detail" json:"detail"`
	RefID     string    `bson:"refId,omitempty" json:"refId,omitempty"` // booking id, uid, payment intent id
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
