package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DataBase *gorm.DB

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

func StorageDriver() string {
	return GetEnv("STORAGE_DRIVER", StorageDriverPostgres)
}

func DatabaseDSN() string {
	var sslmode string
	if GetEnv("DATABASE_SSLMODE", "disable") == "disable" {
		sslmode = "disable"
	} else {
		sslmode = "require"
	}

	return "host=" + GetEnv("DATABASE_HOST", "localhost") +
		" port=" + GetEnv("DATABASE_PORT", "5432") +
		" user=" + GetEnv("DATABASE_USER", "postgres") +
		" password=" + GetEnv("DATABASE_PASS", "") +
		" dbname=" + GetEnv("DATABASE_NAME", "mocktrade") +
		" sslmode=" + sslmode
}

func NewDatabase() (*gorm.DB, error) {
	dialector := postgres.Open(DatabaseDSN())

	newLogger := logger.New(
		Logger,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newLogger,
	})

	if err != nil {
		return nil, err
	}

	return db, nil
}

func ConnectDatabase() error {
	db, err := NewDatabase()
	if err != nil {
		return err
	}

	DataBase = db

	return nil
}
