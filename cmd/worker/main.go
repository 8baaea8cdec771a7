package main

import (
	"go-ems/internal/app"
	"go-ems/internal/bootstrap"
	"go-ems/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
