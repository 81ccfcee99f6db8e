package ports

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// UnsplashAPI определяет операции Unsplash API, которые используют сервисы ресурсов.
// Каждый вызов возвращает размеченный результат; ошибки транспорта тоже
// приходят как domain.ResultError, а не как error.
type UnsplashAPI interface {
	ListCollections(ctx context.Context, params domain.ListCollectionsParams) domain.Result[domain.Feed]
	GetCollection(ctx context.Context, collectionID string) domain.Result[domain.Item]
	GetCollectionPhotos(ctx context.Context, params domain.CollectionPhotosParams) domain.Result[domain.Feed]
	GetRelatedCollections(ctx context.Context, collectionID string) domain.Result[[]domain.Item]

	SearchPhotos(ctx context.Context, params domain.SearchPhotosParams) domain.Result[domain.Feed]
	GetPhoto(ctx context.Context, photoID string) domain.Result[domain.Item]
	GetRandomPhoto(ctx context.Context, params domain.RandomPhotoParams) domain.Result[domain.Item]
	GetPhotoStats(ctx context.Context, photoID string) domain.Result[domain.Item]
	TrackDownload(ctx context.Context, downloadLocation string) domain.Result[domain.Item]

	ListTopics(ctx context.Context, params domain.ListTopicsParams) domain.Result[domain.Feed]
	GetTopic(ctx context.Context, topicIDOrSlug string) domain.Result[domain.Item]
	GetTopicPhotos(ctx context.Context, params domain.TopicPhotosParams) domain.Result[domain.Feed]

	SearchUsers(ctx context.Context, params domain.SearchUsersParams) domain.Result[domain.Feed]
	GetUser(ctx context.Context, username string) domain.Result[domain.Item]
	GetUserPhotos(ctx context.Context, params domain.UserFeedParams) domain.Result[domain.Feed]
	GetUserLikes(ctx context.Context, params domain.UserFeedParams) domain.Result[domain.Feed]
}
