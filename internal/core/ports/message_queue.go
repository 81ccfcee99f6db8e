package ports

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/messaging/payloads"
)

// TrackDownloadPublisher публикует задачи на регистрацию скачивания фото.
// Используется HTTP-обработчиком очереди.
type TrackDownloadPublisher interface {
	PublishTrackDownload(ctx context.Context, payload payloads.TrackDownloadPayload) error
}

// TrackDownloadConsumer читает задачи на регистрацию скачивания из очереди.
type TrackDownloadConsumer interface {
	// StartConsumingTrackDownloads начинает прослушивание очереди и вызывает handler
	// для каждого сообщения. Возвращает управление сразу после регистрации потребителя.
	StartConsumingTrackDownloads(ctx context.Context, handler func(context.Context, payloads.TrackDownloadPayload) error) error
}
