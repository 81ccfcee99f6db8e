package unsplash

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// SearchPhotos — GET /search/photos
func (c *UnsplashAPIClient) SearchPhotos(ctx context.Context, p domain.SearchPhotosParams) domain.Result[domain.Feed] {
	params := pageValues(p.PageParams)
	setIf(params, "query", p.Query)
	setIf(params, "orientation", p.Orientation)
	setList(params, "collections", p.CollectionIDs)
	setIf(params, "content_filter", p.ContentFilter)
	setIf(params, "color", p.Color)
	setIf(params, "order_by", p.OrderBy)
	setIf(params, "lang", p.Lang)
	return fetch(ctx, c, c.endpoint("search", "photos"), params, decodeSearchFeed)
}

// GetPhoto — GET /photos/:id
func (c *UnsplashAPIClient) GetPhoto(ctx context.Context, photoID string) domain.Result[domain.Item] {
	return fetch(ctx, c, c.endpoint("photos", photoID), nil, decodeItem)
}

// GetRandomPhoto — GET /photos/random
func (c *UnsplashAPIClient) GetRandomPhoto(ctx context.Context, p domain.RandomPhotoParams) domain.Result[domain.Item] {
	params := url.Values{}
	setIf(params, "query", p.Query)
	setIf(params, "username", p.Username)
	setList(params, "collections", p.CollectionIDs)
	setList(params, "topics", p.TopicIDs)
	if p.Featured {
		params.Set("featured", strconv.FormatBool(p.Featured))
	}
	return fetch(ctx, c, c.endpoint("photos", "random"), params, decodeItem)
}

// GetPhotoStats — GET /photos/:id/statistics
func (c *UnsplashAPIClient) GetPhotoStats(ctx context.Context, photoID string) domain.Result[domain.Item] {
	return fetch(ctx, c, c.endpoint("photos", photoID, "statistics"), nil, decodeItem)
}

// TrackDownload вызывает links.download_location фотографии.
// Из downloadLocation берутся только путь и query: запрос всегда уходит
// на базовый URL клиента, чтобы ключ доступа не попал на чужой хост.
func (c *UnsplashAPIClient) TrackDownload(ctx context.Context, downloadLocation string) domain.Result[domain.Item] {
	endpoint, err := c.trackEndpoint(downloadLocation)
	if err != nil {
		c.logger.Warn("rejected download location", "error", err)
		return domain.Failure[domain.Item](domain.SourceNetwork, http.StatusBadRequest, err.Error())
	}
	return fetch(ctx, c, endpoint, nil, decodeAck)
}

func (c *UnsplashAPIClient) trackEndpoint(downloadLocation string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(downloadLocation))
	if err != nil {
		return "", fmt.Errorf("invalid download location: %w", err)
	}
	path := strings.TrimLeft(u.EscapedPath(), "/")
	if path == "" {
		return "", fmt.Errorf("download location %q has no path", downloadLocation)
	}

	endpoint := c.baseURL + "/" + path
	if u.RawQuery != "" {
		endpoint += "?" + u.RawQuery
	}
	return endpoint, nil
}
