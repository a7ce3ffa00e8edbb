package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"civic/internal/app"
	"civic/internal/config"
	"civic/internal/logging"
	"civic/pkg/rabbitmq"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		return err
	}

	// --- Storage, services, handlers ---
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.WithError(err).Error("Error releasing resources")
		}
	}()

	// --- Event consumer ---
	if a.Events != nil {
		if err := a.Events.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.WithError(err).Warn("Failed to start event consumer")
		}
	}

	ln, err := net.Listen("tcp", cfg.AppPort)
	if err != nil {
		return err
	}
	log.WithField("addr", ln.Addr().String()).Info("Starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return serve(a, ln, quit)
}

// serve runs the HTTP server on ln until it fails or a signal arrives on
// quit, in which case it shuts down gracefully.
func serve(a *app.App, ln net.Listener, quit <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down server...")
		if err := a.Fiber.Shutdown(); err != nil {
			return err
		}
		log.Info("Server gracefully stopped")
		return nil
	}
}
