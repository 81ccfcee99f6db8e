package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/UnsplashServices/internal/config"
	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/service"
)

// Режимы запуска приложения.
const (
	ModeServer = "server"
	ModeWorker = "worker"
)

// App — собранное приложение: HTTP-сервер сервисов или воркер очереди.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	router     http.Handler
	photoTrack service.Service
	consumer   ports.TrackDownloadConsumer
	closers    []io.Closer
}

// NewApp создаёт приложение. consumer может быть nil, если очередь не настроена.
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	router http.Handler,
	photoTrack service.Service,
	consumer ports.TrackDownloadConsumer,
	closers ...io.Closer,
) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		router:     router,
		photoTrack: photoTrack,
		consumer:   consumer,
		closers:    closers,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = runServer(ctx, a.cfg, a.router, a.logger)
	case ModeWorker:
		err = runWorker(ctx, a.photoTrack, a.consumer, a.logger)
	default:
		err = fmt.Errorf("unknown mode %q (use %q or %q)", mode, ModeServer, ModeWorker)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
	}
	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
