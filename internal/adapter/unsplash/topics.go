package unsplash

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// ListTopics — GET /topics
func (c *UnsplashAPIClient) ListTopics(ctx context.Context, p domain.ListTopicsParams) domain.Result[domain.Feed] {
	params := pageValues(p.PageParams)
	setList(params, "ids", p.TopicIDsOrSlugs)
	setIf(params, "order_by", p.OrderBy)
	return fetch(ctx, c, c.endpoint("topics"), params, decodeListFeed)
}

// GetTopic — GET /topics/:id_or_slug
func (c *UnsplashAPIClient) GetTopic(ctx context.Context, topicIDOrSlug string) domain.Result[domain.Item] {
	return fetch(ctx, c, c.endpoint("topics", topicIDOrSlug), nil, decodeItem)
}

// GetTopicPhotos — GET /topics/:id_or_slug/photos
func (c *UnsplashAPIClient) GetTopicPhotos(ctx context.Context, p domain.TopicPhotosParams) domain.Result[domain.Feed] {
	params := pageValues(p.PageParams)
	setIf(params, "order_by", p.OrderBy)
	setIf(params, "orientation", p.Orientation)
	return fetch(ctx, c, c.endpoint("topics", p.TopicIDOrSlug, "photos"), params, decodeListFeed)
}
