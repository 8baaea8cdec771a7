package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. APP_ENV=production switches
// to the JSON production encoder; anything else gets the console encoder.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
