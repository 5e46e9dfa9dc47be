package models

// PaymentIntentRequest asks the server to open a payment intent for a service
// booking. The amount is always recomputed server-side from the stored price.
type PaymentIntentRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	DurationHours int    `json:"durationHours" binding:"required"`
}

// PaymentIntentResponse carries the client secret consumed by the hosted
// payment widget.
type PaymentIntentResponse struct {
	ClientSecret    string  `json:"clientSecret"`
	PaymentIntentID string  `json:"paymentIntentId"`
	Amount          float64 `json:"amount"`   // major units (BDT)
	Currency        string  `json:"currency"` // "bdt"
}

// ReconcilePayload is the task body for the payment reconciliation queue.
type ReconcilePayload struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	UserID          string  `json:"userId"`
	Amount          float64 `json:"amount"`
}
