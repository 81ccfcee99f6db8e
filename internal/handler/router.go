package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/service"
)

// Mount — сервис ресурса, смонтированный по URL-пути.
type Mount struct {
	Path     string
	Resource *service.Resource
}

// RouterConfig — параметры HTTP-слоя.
type RouterConfig struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

type mountInfo struct {
	Path    string           `json:"path"`
	Kind    service.Kind     `json:"kind"`
	Methods []service.Method `json:"methods"`
}

// NewRouter собирает chi-роутер со всеми сервисами.
// Если publisher == nil, маршрут очереди не регистрируется.
func NewRouter(cfg RouterConfig, mounts []Mount, publisher ports.TrackDownloadPublisher, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	infos := make([]mountInfo, 0, len(mounts))
	for _, m := range mounts {
		r.Mount(m.Path, NewServiceHandler(m.Path, m.Resource, logger).Routes())
		infos = append(infos, mountInfo{Path: m.Path, Kind: m.Resource.Kind(), Methods: m.Resource.Methods()})
		logger.Debug("service mounted", "path", m.Path, "kind", m.Resource.Kind())
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})
	r.Get("/services", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, infos, logger)
	})

	if publisher != nil {
		r.Post("/queue/photo-track", NewQueueHandler(publisher, logger).EnqueuePhotoTrack)
	}

	return r
}
