package di

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/GoArmGo/UnsplashServices/internal/app"
	"github.com/GoArmGo/UnsplashServices/internal/config"
	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/handler"
	"github.com/GoArmGo/UnsplashServices/internal/logger"
	"github.com/GoArmGo/UnsplashServices/internal/rabbitmq"
	"github.com/GoArmGo/UnsplashServices/internal/service"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Один клиент Unsplash на все сервисы
	opts := serviceOptions(cfg, slogger)
	api, err := service.NewAPI(opts)
	if err != nil {
		return nil, err
	}

	// 3. Таблица сервисов
	serviceMounts, err := config.LoadServices(cfg.ServicesFile)
	if err != nil {
		return nil, err
	}
	mounts, err := buildMounts(serviceMounts, api, opts)
	if err != nil {
		return nil, err
	}

	photoTrack, err := photoTrackService(mounts, api, opts)
	if err != nil {
		return nil, err
	}

	// 4. RabbitMQ, если настроен
	var (
		publisher ports.TrackDownloadPublisher
		consumer  ports.TrackDownloadConsumer
		closers   []io.Closer
	)
	if cfg.QueueEnabled() {
		rabbitMQClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:       cfg.RabbitMQ.RabbitMQURL,
			QueueName: cfg.RabbitMQ.RabbitMQQueueName,
		}, slogger)
		if err != nil {
			return nil, err
		}
		publisher, consumer = rabbitMQClient, rabbitMQClient
		closers = append(closers, rabbitMQClient)
	} else {
		slogger.Info("RABBITMQ_URL is not set, download tracking queue disabled")
	}

	// 5. HTTP-роутер
	router := handler.NewRouter(handler.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.AllowedOrigins,
	}, mounts, publisher, slogger)

	application := app.NewApp(cfg, slogger, router, photoTrack, consumer, closers...)

	slogger.Info("dependencies initialized", "services", len(mounts))
	return application, nil
}

func serviceOptions(cfg *config.Config, logger *slog.Logger) service.Options {
	return service.Options{
		AccessKey: cfg.Unsplash.AccessKey,
		Headers:   cfg.Unsplash.Headers,
		Paginate: service.Paginate{
			Default: cfg.PaginateDefault,
			Max:     cfg.PaginateMax,
		},
		BaseURL: cfg.Unsplash.APIURL,
		Timeout: cfg.Unsplash.HTTPTimeout,
		Logger:  logger,
	}
}

// buildMounts создаёт сервис для каждой записи таблицы.
// Переопределение paginate действует только на свой сервис.
func buildMounts(serviceMounts []config.ServiceMount, api ports.UnsplashAPI, opts service.Options) ([]handler.Mount, error) {
	mounts := make([]handler.Mount, 0, len(serviceMounts))
	for _, m := range serviceMounts {
		kind, err := service.ParseKind(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", m.Path, err)
		}

		mountOpts := opts
		if m.Paginate != nil {
			mountOpts.Paginate = service.Paginate{Default: m.Paginate.Default, Max: m.Paginate.Max}
		}

		res, err := service.NewWithAPI(kind, api, mountOpts)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", m.Path, err)
		}
		mounts = append(mounts, handler.Mount{Path: m.Path, Resource: res})
	}
	return mounts, nil
}

// photoTrackService возвращает смонтированный photo-track или создаёт его для воркера.
func photoTrackService(mounts []handler.Mount, api ports.UnsplashAPI, opts service.Options) (*service.Resource, error) {
	for _, m := range mounts {
		if m.Resource.Kind() == service.KindPhotoTrack {
			return m.Resource, nil
		}
	}
	return service.NewWithAPI(service.KindPhotoTrack, api, opts)
}
