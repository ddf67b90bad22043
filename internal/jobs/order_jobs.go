package jobs

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/utils"
)

// ProcessPendingOrders is the asynchronous confirmation worker: it claims a
// batch of pending orders and runs the confirmation coordinator on each.
// Delivery is at-least-once; the per-order outcome decides acknowledge vs
// redeliver.
func (jr *JobRunner) ProcessPendingOrders() {
	jr.runWithRecovery("ProcessPendingOrders", func() {
		ctx := context.Background()

		orders, err := jr.store.Orders().DequeuePending(ctx, jr.config.Worker.BatchSize)
		if err != nil {
			logger.Error("Failed to dequeue pending orders", "error", err)
			return
		}

		for _, order := range orders {
			jr.processOrder(ctx, order)
		}
	})
}

func (jr *JobRunner) processOrder(ctx context.Context, order domain.Order) {
	reservations, err := jr.services.Rental.ConfirmOrder(ctx, &order)
	if err == nil {
		logger.Info("Order confirmed", "order_id", order.ID, "renter", order.RenterName, "reservations", len(reservations))
		jr.notifyConfirmed(ctx, order, reservations)
		return
	}

	switch {
	case domain.IsTerminal(err):
		// Business failure: acknowledge, never retry.
		if mErr := jr.store.Orders().MarkFailed(ctx, order.ID, err.Error()); mErr != nil {
			logger.Error("Failed to mark order failed", "order_id", order.ID, "error", mErr)
			return
		}
		logger.Info("Order failed", "order_id", order.ID, "reason", err)
		jr.notifyFailed(ctx, order, err.Error())

	case order.Attempts >= jr.config.Worker.MaxAttempts:
		reason := fmt.Sprintf("gave up after %d attempts: %v", order.Attempts, err)
		if mErr := jr.store.Orders().MarkFailed(ctx, order.ID, reason); mErr != nil {
			logger.Error("Failed to mark order failed", "order_id", order.ID, "error", mErr)
			return
		}
		logger.Warn("Order retries exhausted", "order_id", order.ID, "attempts", order.Attempts, "error", err)
		jr.notifyFailed(ctx, order, reason)

	default:
		// Infrastructure failure: release for a later redelivery, no
		// renter-visible error yet.
		if rErr := jr.store.Orders().Release(ctx, order.ID, err.Error()); rErr != nil {
			logger.Error("Failed to release order for retry", "order_id", order.ID, "error", rErr)
			return
		}
		logger.Warn("Order released for retry", "order_id", order.ID, "attempts", order.Attempts, "error", err)
	}
}

func (jr *JobRunner) notifyConfirmed(ctx context.Context, order domain.Order, reservations []domain.Reservation) {
	note := &domain.Notification{
		RenterName: order.RenterName,
		Title:      "Booking Confirmed",
		Message:    fmt.Sprintf("Order %s confirmed: %d reservation(s)", order.ID, len(reservations)),
		Attributes: map[string]string{
			"type":     "ORDER_CONFIRMED",
			"order_id": order.ID,
		},
	}
	if err := jr.store.Notifications().Create(ctx, note); err != nil {
		logger.Error("Failed to create notification", "order_id", order.ID, "error", err)
	}

	if err := jr.services.Email.SendOrderConfirmedNotification(ctx, order.RenterEmail, order.RenterName, order.ID, reservations); err != nil {
		logger.Error("Failed to send confirmation email", "order_id", order.ID, "error", err)
	}
}

func (jr *JobRunner) notifyFailed(ctx context.Context, order domain.Order, reason string) {
	note := &domain.Notification{
		RenterName: order.RenterName,
		Title:      "Booking Failed",
		Message:    fmt.Sprintf("Order %s failed: %s", order.ID, reason),
		Attributes: map[string]string{
			"type":     "ORDER_FAILED",
			"order_id": order.ID,
		},
	}
	if err := jr.store.Notifications().Create(ctx, note); err != nil {
		logger.Error("Failed to create notification", "order_id", order.ID, "error", err)
	}

	if err := jr.services.Email.SendOrderFailedNotification(ctx, order.RenterEmail, order.RenterName, order.ID, reason); err != nil {
		logger.Error("Failed to send failure email", "order_id", order.ID, "error", err)
	}
}

// CleanupAcknowledgedOrders prunes confirmed and failed orders past the
// retention window.
func (jr *JobRunner) CleanupAcknowledgedOrders() {
	jr.runWithRecovery("CleanupAcknowledgedOrders", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -int(jr.config.Worker.RetentionDays))
		query := `DELETE FROM orders WHERE status IN ('CONFIRMED', 'FAILED') AND updated_on < $1`

		result, err := jr.db.ExecContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to clean up acknowledged orders", "error", err)
			return
		}
		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			logger.Info("Cleaned up acknowledged orders", "count", rows, "cutoff", cutoff.Format(utils.DateLayout))
		}
	})
}
