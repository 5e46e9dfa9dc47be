package payment

import (
	"errors"
	"fmt"
	"math"

	serviceRepo "carexyz/database/repository/service"
	"carexyz/models"
	svcbooking "carexyz/services/booking"
	"carexyz/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Currency is the marketplace settlement currency.
const Currency = "bdt"

// PaymentService creates payment intents with the hosted processor.
type PaymentService interface {
	// CreateIntent computes the amount from the stored service price (the
	// client never supplies it) and opens a payment intent.
	CreateIntent(userID, serviceID string, durationHours int) (*models.PaymentIntentResponse, error)
}

// StripePaymentService is the production implementation backed by Stripe.
type StripePaymentService struct {
	ServiceRepo serviceRepo.ServiceRepository
}

// minorUnits converts a major-unit BDT amount to poisha. Rounded, not
// truncated: binary floats make 682.11*100 come out just under 68211.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent opens a Stripe payment intent for the computed booking cost.
func (s *StripePaymentService) CreateIntent(userID, serviceID string, durationHours int) (*models.PaymentIntentResponse, error) {
	logger := utils.GetLogger()

	if durationHours <= 0 {
		return nil, &svcbooking.ValidationError{Fields: map[string]string{
			"durationHours": "durationHours must be positive",
		}}
	}

	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil || !svc.Active {
		return nil, &svcbooking.NotFoundError{Resource: "service", ID: serviceID}
	}

	amount := svc.PricePerHour * float64(durationHours)
	minor := minorUnits(amount)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minor),
		Currency: stripe.String(Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("serviceId", serviceID)
	params.AddMetadata("durationHours", fmt.Sprintf("%d", durationHours))

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			logger.Error("stripe rejected payment intent",
				zap.String("code", string(stripeErr.Code)),
				zap.String("serviceId", serviceID))
			return nil, fmt.Errorf("payment processor error: %s", stripeErr.Msg)
		}
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	logger.Info("payment intent created",
		zap.String("paymentIntentId", pi.ID),
		zap.Int64("amountMinor", minor),
		zap.String("userId", userID))

	return &models.PaymentIntentResponse{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		Amount:          amount,
		Currency:        Currency,
	}, nil
}
