package cron

import (
	"context"
	"sync"

	"github.com/jasonlvhit/gocron"

	"github.com/zsmartex/mocktrade/config"
	"github.com/zsmartex/mocktrade/events"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/services"
)

// StatusSummaryJob writes the number of orders and trades in each status to
// InfluxDB every Interval minutes.
type StatusSummaryJob struct {
	Orders   repositories.OrderRepository
	Trades   repositories.TradeRepository
	Writer   events.PointWriter
	Clock    services.Clock
	Interval uint64

	setup    sync.Once
	stopOnce sync.Once
	stop     chan struct{}
}

func (j *StatusSummaryJob) done() chan struct{} {
	j.setup.Do(func() {
		j.stop = make(chan struct{})
	})

	return j.stop
}

// Process schedules Summarize and blocks until Stop, then clears the
// scheduler and halts its ticker.
func (j *StatusSummaryJob) Process() {
	interval := j.Interval
	if interval == 0 {
		interval = 1
	}

	s := gocron.NewScheduler()
	s.Every(interval).Minutes().Do(j.run)
	stopped := s.Start()

	<-j.done()

	s.Clear()
	stopped <- true
}

func (j *StatusSummaryJob) Stop() {
	done := j.done()

	j.stopOnce.Do(func() {
		close(done)
	})
}

func (j *StatusSummaryJob) run() {
	if err := j.Summarize(context.Background()); err != nil {
		config.Logger.WithError(err).Error("Failed to summarize statuses")
	}
}

func (j *StatusSummaryJob) Summarize(ctx context.Context) error {
	now := j.Clock.Now().UTC()

	order_counts, err := j.Orders.CountByStatus(ctx)
	if err != nil {
		return err
	}

	trade_counts, err := j.Trades.CountByStatus(ctx)
	if err != nil {
		return err
	}

	for _, count := range order_counts {
		tags := map[string]string{"status": count.Status}
		fields := map[string]interface{}{"total": count.Total}

		if err := j.Writer.WritePoint("order_status", tags, fields, now); err != nil {
			return err
		}
	}

	for _, count := range trade_counts {
		tags := map[string]string{"status": count.Status}
		fields := map[string]interface{}{"total": count.Total}

		if err := j.Writer.WritePoint("trade_status", tags, fields, now); err != nil {
			return err
		}
	}

	config.Logger.Debugf("Summarized %d order and %d trade statuses", len(order_counts), len(trade_counts))

	return nil
}
