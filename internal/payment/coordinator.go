package payment

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/viviapp/pedidos/internal/backend"
	"github.com/viviapp/pedidos/internal/types"
)

//go:generate mockgen -source coordinator.go -destination coordinator_mock_test.go -package payment

type PaidAppender interface {
	Append(ctx context.Context, order types.Order) error
}

type OrderRemover interface {
	Delete(ctx context.Context, id int64) error
}

// PartialTransitionError means the paid record was written but the
// pending order could not be removed: the order now exists on both
// sides. The caller must retry the removal alone; repeating the append
// would duplicate the paid record.
type PartialTransitionError struct {
	OrderID int64
	Err     error
}

func (e *PartialTransitionError) Error() string {
	return fmt.Sprintf("order %d is paid but still pending: %s", e.OrderID, e.Err)
}

func (e *PartialTransitionError) Unwrap() error {
	return e.Err
}

// Coordinator drives the pending-to-paid transition: append a paid
// record, then remove the pending order. The first step is never retried
// automatically.
type Coordinator struct {
	paid   PaidAppender
	orders OrderRemover
}

func NewCoordinator(paid PaidAppender, orders OrderRemover) *Coordinator {
	return &Coordinator{
		paid:   paid,
		orders: orders,
	}
}

// MarkPaid transitions one order. If the append fails the order is left
// pending and untouched. If the append succeeds but the removal fails,
// a PartialTransitionError carrying the order id is returned so the
// caller can retry the removal on its own.
func (c *Coordinator) MarkPaid(ctx context.Context, order types.Order) error {

	if err := c.paid.Append(ctx, order); err != nil {
		return fmt.Errorf("recording payment for order %d: %w", order.ID, err)
	}

	if err := c.removePending(ctx, order.ID); err != nil {
		logger.Errorf("Order %d paid but still pending: %s", order.ID, err)
		return &PartialTransitionError{OrderID: order.ID, Err: err}
	}
	return nil
}

// RetryRemoval retries only the second step of a partial transition. Safe
// to call any number of times: once the order is gone the remote answers
// NotFound, which means the transition already completed.
func (c *Coordinator) RetryRemoval(ctx context.Context, orderID int64) error {

	if err := c.removePending(ctx, orderID); err != nil {
		return &PartialTransitionError{OrderID: orderID, Err: err}
	}
	return nil
}

func (c *Coordinator) removePending(ctx context.Context, orderID int64) error {

	err := c.orders.Delete(ctx, orderID)

	var notFound *backend.NotFoundError
	if errors.As(err, &notFound) {
		// already removed, the transition is complete
		return nil
	}
	return err
}
