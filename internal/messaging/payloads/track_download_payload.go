package payloads

import "github.com/google/uuid"

// TrackDownloadPayload — задача на регистрацию скачивания фото в Unsplash,
// передаваемая через RabbitMQ.
type TrackDownloadPayload struct {
	ID               uuid.UUID `json:"id"`
	DownloadLocation string    `json:"download_location"`
}
