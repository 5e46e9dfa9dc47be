package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"carexyz/config"
	activityRepo "carexyz/database/repository/activity"
	bookingRepo "carexyz/database/repository/booking"
	"carexyz/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// TypePaymentReconcile is the task type for payments whose booking write failed.
const TypePaymentReconcile = "payment:reconcile"

// reconcileAfter is how long an intent may stay unresolved before the sweep
// re-enqueues it.
const reconcileAfter = 24 * time.Hour

// Reconciler enqueues payment reconciliation work.
type Reconciler struct {
	client *asynq.Client
}

// NewReconciler creates the asynq client used by request handlers.
func NewReconciler() *Reconciler {
	return &Reconciler{
		client: asynq.NewClient(redisOpts()),
	}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// EnqueueReconcile schedules a reconciliation check for a payment intent.
func (r *Reconciler) EnqueueReconcile(p models.ReconcilePayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal reconcile payload: %w", err)
	}
	task := asynq.NewTask(TypePaymentReconcile, payload)
	if _, err := r.client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}

// InitReconcileWorker runs the async worker in background.
func InitReconcileWorker(bookings bookingRepo.BookingRepository, activity activityRepo.ActivityRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReconcile, handleReconcileTask(bookings, activity))

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	startSweep(bookings, activity)
}

// handleReconcileTask checks whether a booking finally landed for the payment
// intent. If not, it records an activity entry so support can follow up; no
// automatic refund is attempted.
func handleReconcileTask(bookings bookingRepo.BookingRepository, activity activityRepo.ActivityRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileWorker] invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByPaymentIntent(p.PaymentIntentID)
		if err != nil {
			return err
		}
		if b != nil {
			// A booking now references the intent; nothing to reconcile.
			log.Printf("[ReconcileWorker] intent %s resolved by booking %s", p.PaymentIntentID, b.ID)
			return nil
		}

		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivityPaymentUnreconcile,
			Actor:  "system",
			Detail: fmt.Sprintf("payment of %.2f by user %s succeeded but no booking exists", p.Amount, p.UserID),
			RefID:  p.PaymentIntentID,
		}
		if err := activity.Append(entry); err != nil {
			return fmt.Errorf("failed to record unreconciled payment: %w", err)
		}
		log.Printf("[ReconcileWorker] flagged unreconciled intent %s for support", p.PaymentIntentID)
		return nil
	}
}

// startSweep schedules an hourly pass that re-enqueues unreconciled intents
// still unresolved after reconcileAfter.
func startSweep(bookings bookingRepo.BookingRepository, activity activityRepo.ActivityRepository) {
	reconciler := NewReconciler()

	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		entries, err := activity.GetRecent(models.ActivityPaymentUnreconcile, 500)
		if err != nil {
			log.Printf("[ReconcileSweep] failed to list unreconciled entries: %v", err)
			return
		}

		cutoff := time.Now().Add(-reconcileAfter)
		for _, e := range entries {
			if e.CreatedAt.After(cutoff) {
				continue
			}
			b, err := bookings.GetByPaymentIntent(e.RefID)
			if err != nil || b != nil {
				continue
			}
			p := models.ReconcilePayload{PaymentIntentID: e.RefID}
			if err := reconciler.EnqueueReconcile(p); err != nil {
				log.Printf("[ReconcileSweep] failed to re-enqueue intent %s: %v", e.RefID, err)
			}
		}
	})
	if err != nil {
		log.Printf("[ReconcileSweep] failed to schedule sweep: %v", err)
		return
	}
	c.Start()
}
