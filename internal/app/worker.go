package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/messaging/payloads"
	"github.com/GoArmGo/UnsplashServices/internal/rabbitmq"
	"github.com/GoArmGo/UnsplashServices/internal/service"
)

// runWorker запускает потребителя RabbitMQ и регистрирует скачивания через photo-track.
func runWorker(ctx context.Context, photoTrack service.Service, consumer ports.TrackDownloadConsumer, logger *slog.Logger) error {
	if consumer == nil {
		return errors.New("worker mode requires RABBITMQ_URL")
	}
	if photoTrack == nil {
		return errors.New("worker mode requires a photo-track service")
	}

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	if err := consumer.StartConsumingTrackDownloads(workerCtx, trackDownloadHandler(photoTrack, logger)); err != nil {
		return fmt.Errorf("start rabbitmq consumer: %w", err)
	}
	logger.Info("worker started, waiting for messages")

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping worker")
	return nil
}

// trackDownloadHandler вызывает photo-track.Create для задачи из очереди.
// Ответы 4xx и невалидные данные помечаются как постоянные ошибки.
func trackDownloadHandler(photoTrack service.Service, logger *slog.Logger) func(context.Context, payloads.TrackDownloadPayload) error {
	return func(ctx context.Context, payload payloads.TrackDownloadPayload) error {
		start := time.Now()

		_, err := photoTrack.Create(ctx, service.Data{"downloadLocation": payload.DownloadLocation}, service.Params{})
		if err != nil {
			if !retryable(err) {
				err = rabbitmq.Permanent(err)
			}
			return fmt.Errorf("track download %s: %w", payload.ID, err)
		}

		logger.Info("download tracked",
			"id", payload.ID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}
}

// retryable: повторяем только сетевые сбои и ответы 5xx.
func retryable(err error) bool {
	var general *apperrors.GeneralError
	if !errors.As(err, &general) {
		return false
	}
	return general.Status == 0 || general.Status >= http.StatusInternalServerError
}
