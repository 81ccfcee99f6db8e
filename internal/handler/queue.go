package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/messaging/payloads"
)

// QueueHandler ставит регистрацию скачиваний в очередь RabbitMQ.
type QueueHandler struct {
	publisher ports.TrackDownloadPublisher
	logger    *slog.Logger
}

func NewQueueHandler(publisher ports.TrackDownloadPublisher, logger *slog.Logger) *QueueHandler {
	return &QueueHandler{publisher: publisher, logger: logger}
}

type trackDownloadRequest struct {
	DownloadLocation string `json:"downloadLocation"`
}

type queuedResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// EnqueuePhotoTrack — POST /queue/photo-track.
func (h *QueueHandler) EnqueuePhotoTrack(w http.ResponseWriter, r *http.Request) {
	var req trackDownloadRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		h.logger.Warn("invalid queue request body", "error", err)
		respondWithError(w, &apperrors.BadRequestError{Param: "body", Message: "Request body must be a JSON object"}, h.logger)
		return
	}
	if strings.TrimSpace(req.DownloadLocation) == "" {
		h.logger.Warn("missing required parameter", "param", "downloadLocation")
		respondWithError(w, apperrors.NewMissingField("downloadLocation"), h.logger)
		return
	}

	payload := payloads.TrackDownloadPayload{
		ID:               uuid.New(),
		DownloadLocation: req.DownloadLocation,
	}

	if err := h.publisher.PublishTrackDownload(r.Context(), payload); err != nil {
		h.logger.Error("failed to publish track download", "id", payload.ID, "error", err)
		respondWithError(w, apperrors.NewGeneralError("Queue error", []string{"failed to enqueue download tracking"}, 0, "error"), h.logger)
		return
	}

	h.logger.Info("track download queued", "id", payload.ID)
	respondWithJSON(w, http.StatusAccepted, queuedResponse{ID: payload.ID, Status: "queued"}, h.logger)
}
