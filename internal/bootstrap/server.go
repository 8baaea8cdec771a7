package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownGrace = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StartHTTPServer is intentionally blocking: the caller's main goroutine
// parks here until SIGINT/SIGTERM, then in-flight requests get shutdownGrace
// to drain before the process exits.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, auditLogger AuditLogger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		zap.L().Info("http server listening", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("shutdown signal received", zap.String("signal", sig.String()))
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "server is shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown forced after grace period", zap.Error(err))
		return
	}
	zap.L().Info("server exited cleanly")
}
