package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zsmartex/mocktrade/config"
	"github.com/zsmartex/mocktrade/jobs/cron"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/services"
	"github.com/zsmartex/mocktrade/workers/daemons"
)

func CreateWorker(id string, orders repositories.OrderRepository, trades repositories.TradeRepository) daemons.Worker {
	switch id {
	case "status_summary":
		if config.InfluxDB == nil {
			config.Logger.Fatal("status_summary requires INFLUXDB_URL")
		}

		return daemons.NewCronJob(&cron.StatusSummaryJob{
			Orders:   orders,
			Trades:   trades,
			Writer:   config.InfluxDB,
			Clock:    services.SystemClock,
			Interval: SummaryInterval(),
		})
	default:
		return nil
	}
}

// SummaryInterval reads SUMMARY_INTERVAL_MINUTES; values below one minute
// fall back to one.
func SummaryInterval() uint64 {
	minutes := config.GetEnvInt("SUMMARY_INTERVAL_MINUTES", 1)
	if minutes < 1 {
		return 1
	}

	return uint64(minutes)
}

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		config.Logger.Fatalf("Failed to initialize config: %v", err)
	}
	defer config.Close()

	orders, trades, err := repositories.Open(config.StorageDriver(), config.DataBase)
	if err != nil {
		config.Logger.Fatalf("Failed to open storage: %v", err)
	}

	ARVG := os.Args[1:]
	if len(ARVG) == 0 {
		ARVG = []string{"status_summary"}
	}

	done := make(chan struct{})
	workers := make([]daemons.Worker, 0, len(ARVG))

	for _, id := range ARVG {
		worker := CreateWorker(id, orders, trades)
		if worker == nil {
			config.Logger.Fatalf("Unknown daemon: %s", id)
		}
		workers = append(workers, worker)

		config.Logger.Infof("Start mocktrade-daemon: %s", id)

		go func() {
			worker.Start()
			done <- struct{}{}
		}()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		config.Logger.Info("Stopping mocktrade-daemon")
		for _, worker := range workers {
			worker.Stop()
		}
	}()

	for range ARVG {
		<-done
	}
}
