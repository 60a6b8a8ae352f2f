package stats

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"github.com/viviapp/pedidos/internal/types"
)

type SummarySource interface {
	FetchSummary(ctx context.Context) (*types.Stats, error)
}

// Aggregator produces display statistics, preferring the order store's
// pre-computed summary and falling back to local computation over the
// order list when the summary cannot be had. The fallback is silent:
// callers never see a summary failure as an error.
type Aggregator struct {
	summary SummarySource
	now     func() time.Time
}

func NewAggregator(summary SummarySource) *Aggregator {
	return &Aggregator{
		summary: summary,
		now:     time.Now,
	}
}

func (a *Aggregator) Stats(ctx context.Context, orders []types.Order) types.Stats {

	if a.summary != nil {
		stats, err := a.summary.FetchSummary(ctx)
		if err == nil {
			return *stats
		}
		logger.Infof("Summary unavailable, computing stats locally: %s", err)
	}
	return Compute(orders, Today(a.now()))
}

// Today is the calendar day used for the "value today" bucket. Resolved
// from the local clock; computed once per aggregation run so a run that
// straddles midnight still buckets every order against the same day.
func Today(t time.Time) string {
	return t.Format("2006-01-02")
}

// Compute aggregates an order list. Every order counts toward the total
// regardless of how its amount parsed; an order whose date prefix equals
// today also counts toward the today bucket.
func Compute(orders []types.Order, today string) types.Stats {

	sumToday := decimal.Zero
	sumTotal := decimal.Zero

	for _, order := range orders {
		sumTotal = sumTotal.Add(order.Amount.Decimal)
		if order.DatePrefix() == today {
			sumToday = sumToday.Add(order.Amount.Decimal)
		}
	}

	return types.Stats{
		OrderCount: types.AmountFromInt(int64(len(orders))),
		ValueToday: types.NewAmount(sumToday),
		ValueTotal: types.NewAmount(sumTotal),
	}
}
