package handlers

import (
	"net/http"

	"carexyz/middleware"
	"carexyz/models"
	svcbooking "carexyz/services/booking"
	"carexyz/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReconcileEnqueuer schedules a reconciliation check when a booking write
// fails after a confirmed payment.
type ReconcileEnqueuer interface {
	EnqueueReconcile(p models.ReconcilePayload) error
}

// BookingHandler owns the customer booking and payment endpoints.
type BookingHandler struct {
	BookingSvc svcbooking.BookingService
	PaymentSvc payment.PaymentService
	Reconciler ReconcileEnqueuer
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs svcbooking.BookingService, ps payment.PaymentService, rec ReconcileEnqueuer, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: bs, PaymentSvc: ps, Reconciler: rec, Logger: logger}
}

// CreatePaymentIntent handles POST /api/create-payment-intent. The amount is
// recomputed from the stored service price; the client only names the service
// and duration.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.PaymentSvc.CreateIntent(uid, req.ServiceID, req.DurationHours)
	if err != nil {
		h.Logger.Error("payment intent creation failed",
			zap.String("userId", uid),
			zap.String("serviceId", req.ServiceID),
			zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /api/bookings, called after the client reports
// payment success.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var in svcbooking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingSvc.CreateBooking(uid, in)
	if err != nil {
		// A failed persistence after a confirmed payment is the one case we
		// cannot settle in-request: flag the intent for reconciliation and
		// tell the user to contact support.
		if isPersistenceFailure(err) && in.PaymentIntentID != "" {
			h.Logger.Error("booking persistence failed after payment",
				zap.String("userId", uid),
				zap.String("paymentIntentId", in.PaymentIntentID),
				zap.Error(err))
			if h.Reconciler != nil {
				p := models.ReconcilePayload{
					PaymentIntentID: in.PaymentIntentID,
					UserID:          uid,
					Amount:          in.TotalCost,
				}
				if qErr := h.Reconciler.EnqueueReconcile(p); qErr != nil {
					h.Logger.Error("failed to enqueue reconciliation", zap.Error(qErr))
				}
			}
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Your payment succeeded but the booking could not be saved. Please contact support with your payment reference.",
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// isPersistenceFailure distinguishes infrastructure errors from the typed
// validation/guard errors the service returns before any write.
func isPersistenceFailure(err error) bool {
	switch err.(type) {
	case *svcbooking.ValidationError, *svcbooking.NotFoundError, *svcbooking.ForbiddenError, *svcbooking.ConflictError:
		return false
	}
	return true
}

// ListMyBookings handles GET /api/bookings (owner's bookings only).
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.BookingSvc.GetUserBookings(uid)
	if err != nil {
		h.Logger.Error("failed to fetch bookings", zap.String("userId", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /api/bookings. The only customer action is cancel.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		ID     string `json:"id" binding:"required"`
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Action != "cancel" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported action"})
		return
	}

	b, err := h.BookingSvc.CancelOwn(uid, req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
