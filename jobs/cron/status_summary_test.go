package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/services"
)

var now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type point struct {
	name   string
	status string
	total  interface{}
}

type fakeWriter struct {
	points []point
	err    error
}

func (w *fakeWriter) WritePoint(name string, tags map[string]string, fields map[string]interface{}, at time.Time) error {
	if w.err != nil {
		return w.err
	}

	w.points = append(w.points, point{name, tags["status"], fields["total"]})

	return nil
}

func seed(t *testing.T) (*repositories.MemoryOrderRepository, *repositories.MemoryTradeRepository) {
	ctx := context.Background()
	orders := repositories.NewMemoryOrderRepository()
	trades := repositories.NewMemoryTradeRepository()

	for id, status := range map[string]string{"o1": "NEW", "o2": "NEW", "o3": "FILLED"} {
		require.NoError(t, orders.Insert(ctx, &models.Order{ID: id, Status: status, CreatedAt: now}))
	}
	require.NoError(t, trades.Insert(ctx, &models.Trade{ID: "t1", Status: "BOOKED", CreatedAt: now}))

	return orders, trades
}

func TestStatusSummaryJob(t *testing.T) {
	orders, trades := seed(t)
	writer := &fakeWriter{}

	job := &StatusSummaryJob{
		Orders: orders,
		Trades: trades,
		Writer: writer,
		Clock:  services.FixedClock(now),
	}

	require.NoError(t, job.Summarize(context.Background()))

	assert.Equal(t, []point{
		{"order_status", "FILLED", int64(1)},
		{"order_status", "NEW", int64(2)},
		{"trade_status", "BOOKED", int64(1)},
	}, writer.points)
}

func TestStatusSummaryJobWriteFailure(t *testing.T) {
	orders, trades := seed(t)
	failure := errors.New("influx down")

	job := &StatusSummaryJob{
		Orders: orders,
		Trades: trades,
		Writer: &fakeWriter{err: failure},
		Clock:  services.FixedClock(now),
	}

	assert.ErrorIs(t, job.Summarize(context.Background()), failure)
}

func TestStatusSummaryJobStop(t *testing.T) {
	orders, trades := seed(t)

	job := &StatusSummaryJob{
		Orders:   orders,
		Trades:   trades,
		Writer:   &fakeWriter{},
		Clock:    services.FixedClock(now),
		Interval: 1,
	}

	returned := make(chan struct{})
	go func() {
		job.Process()
		close(returned)
	}()

	job.Stop()
	job.Stop()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Process kept running after Stop")
	}
}
