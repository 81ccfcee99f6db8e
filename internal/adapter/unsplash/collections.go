package unsplash

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// ListCollections — GET /collections
func (c *UnsplashAPIClient) ListCollections(ctx context.Context, p domain.ListCollectionsParams) domain.Result[domain.Feed] {
	return fetch(ctx, c, c.endpoint("collections"), pageValues(p.PageParams), decodeListFeed)
}

// GetCollection — GET /collections/:id
func (c *UnsplashAPIClient) GetCollection(ctx context.Context, collectionID string) domain.Result[domain.Item] {
	return fetch(ctx, c, c.endpoint("collections", collectionID), nil, decodeItem)
}

// GetCollectionPhotos — GET /collections/:id/photos
func (c *UnsplashAPIClient) GetCollectionPhotos(ctx context.Context, p domain.CollectionPhotosParams) domain.Result[domain.Feed] {
	params := pageValues(p.PageParams)
	setIf(params, "order_by", p.OrderBy)
	setIf(params, "orientation", p.Orientation)
	return fetch(ctx, c, c.endpoint("collections", p.CollectionID, "photos"), params, decodeListFeed)
}

// GetRelatedCollections — GET /collections/:id/related
func (c *UnsplashAPIClient) GetRelatedCollections(ctx context.Context, collectionID string) domain.Result[[]domain.Item] {
	return fetch(ctx, c, c.endpoint("collections", collectionID, "related"), nil, decodeItems)
}
