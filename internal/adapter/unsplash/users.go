package unsplash

import (
	"context"
	"net/url"
	"strconv"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// SearchUsers — GET /search/users
func (c *UnsplashAPIClient) SearchUsers(ctx context.Context, p domain.SearchUsersParams) domain.Result[domain.Feed] {
	params := pageValues(p.PageParams)
	setIf(params, "query", p.Query)
	return fetch(ctx, c, c.endpoint("search", "users"), params, decodeSearchFeed)
}

// GetUser — GET /users/:username
func (c *UnsplashAPIClient) GetUser(ctx context.Context, username string) domain.Result[domain.Item] {
	return fetch(ctx, c, c.endpoint("users", username), nil, decodeItem)
}

// GetUserPhotos — GET /users/:username/photos
func (c *UnsplashAPIClient) GetUserPhotos(ctx context.Context, p domain.UserFeedParams) domain.Result[domain.Feed] {
	params := userFeedValues(p)
	if p.Stats {
		params.Set("stats", strconv.FormatBool(p.Stats))
	}
	return fetch(ctx, c, c.endpoint("users", p.Username, "photos"), params, decodeListFeed)
}

// GetUserLikes — GET /users/:username/likes
func (c *UnsplashAPIClient) GetUserLikes(ctx context.Context, p domain.UserFeedParams) domain.Result[domain.Feed] {
	return fetch(ctx, c, c.endpoint("users", p.Username, "likes"), userFeedValues(p), decodeListFeed)
}

func userFeedValues(p domain.UserFeedParams) url.Values {
	params := pageValues(p.PageParams)
	setIf(params, "order_by", p.OrderBy)
	setIf(params, "orientation", p.Orientation)
	return params
}
