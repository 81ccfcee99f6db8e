package service

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

type searchUsersQuery struct {
	Keyword string `query:"keyword" validate:"required"`
}

type userFeedQuery struct {
	Username    string `query:"username" validate:"required"`
	OrderBy     string `query:"orderBy"`
	Orientation string `query:"orientation"`
	Stats       string `query:"stats"`
}

func newUsers(d deps) *Resource {
	return &Resource{
		kind: KindUsers,
		find: func(ctx context.Context, params Params) (any, error) {
			var q searchUsersQuery
			bindQuery(params.Query, &q)
			if err := requireQuery(&q, " when searching users"); err != nil {
				return nil, err
			}

			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.SearchUsers(ctx, domain.SearchUsersParams{
				PageParams: page.pageParams(),
				Query:      q.Keyword,
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
		get: func(ctx context.Context, id string, params Params) (any, error) {
			user, err := unwrap(d.label, d.api.GetUser(ctx, id))
			if err != nil {
				return nil, err
			}
			return user, nil
		},
	}
}

func newUserLikes(d deps) *Resource {
	return &Resource{
		kind: KindUserLikes,
		find: userFeed(d, d.api.GetUserLikes),
	}
}

// newUserPhotos: фильтр stats передаётся в Unsplash, а не выполняется отдельным запросом.
func newUserPhotos(d deps) *Resource {
	return &Resource{
		kind: KindUserPhotos,
		find: userFeed(d, d.api.GetUserPhotos),
	}
}

func userFeed(d deps, call func(context.Context, domain.UserFeedParams) domain.Result[domain.Feed]) findFunc {
	return func(ctx context.Context, params Params) (any, error) {
		var q userFeedQuery
		bindQuery(params.Query, &q)
		if err := requireQuery(&q, " when requesting photos"); err != nil {
			return nil, err
		}

		page := d.paginate(params)
		feed, err := unwrap(d.label, call(ctx, domain.UserFeedParams{
			PageParams:  page.pageParams(),
			Username:    q.Username,
			OrderBy:     q.OrderBy,
			Orientation: q.Orientation,
			Stats:       parseBool(q.Stats),
		}))
		if err != nil {
			return nil, err
		}
		return envelope(feed, page.Skip), nil
	}
}
