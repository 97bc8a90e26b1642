package config

import "os"

func InitializeConfig() error {
	NewLoggerService()

	if StorageDriver() == StorageDriverPostgres {
		if err := ConnectDatabase(); err != nil {
			return err
		}
	}

	if len(os.Getenv("INFLUXDB_URL")) > 0 {
		if err := NewInfluxDB(); err != nil {
			return err
		}
	}

	if len(os.Getenv("NATS_URL")) > 0 {
		if err := ConnectNats(); err != nil {
			return err
		}
	}

	return nil
}

func Close() {
	if Nats != nil {
		Nats.Close()
	}

	if InfluxDB != nil {
		InfluxDB.Close()
	}

	if DataBase != nil {
		if db, err := DataBase.DB(); err == nil {
			db.Close()
		}
	}
}
