package app

import (
	"database/sql"
	"errors"
	"os"

	"go-ems/internal/middleware"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// connectDatabase reads the DB_* environment and dials Postgres, returning
// both the gorm handle and the underlying *sql.DB (services run their own
// transactions on the latter).
func connectDatabase() (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		connectRetries,
	)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

func kafkaBrokerFromEnv() (string, error) {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return "", errors.New("KAFKA_BROKER is required")
	}
	return broker, nil
}

// BuildApp connects the infrastructure and mounts every module's routes.
func BuildApp(router *gin.Engine) error {
	gormDB, sqlDB, err := connectDatabase()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), connectRetries)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, sqlDB, gormDB, redisClient)
}
