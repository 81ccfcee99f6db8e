package service

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

type listTopicsQuery struct {
	TopicIDsOrSlugs string `query:"topicIdsOrSlugs"`
	OrderBy         string `query:"orderBy"`
}

type topicPhotosQuery struct {
	TopicIDOrSlug string `query:"topicIdOrSlug" validate:"required"`
	OrderBy       string `query:"orderBy"`
	Orientation   string `query:"orientation"`
}

func newTopics(d deps) *Resource {
	return &Resource{
		kind: KindTopics,
		find: func(ctx context.Context, params Params) (any, error) {
			var q listTopicsQuery
			bindQuery(params.Query, &q)

			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.ListTopics(ctx, domain.ListTopicsParams{
				PageParams:      page.pageParams(),
				TopicIDsOrSlugs: splitList(q.TopicIDsOrSlugs),
				OrderBy:         q.OrderBy,
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
		get: func(ctx context.Context, id string, params Params) (any, error) {
			topic, err := unwrap(d.label, d.api.GetTopic(ctx, id))
			if err != nil {
				return nil, err
			}
			return topic, nil
		},
	}
}

func newTopicPhotos(d deps) *Resource {
	return &Resource{
		kind: KindTopicPhotos,
		find: func(ctx context.Context, params Params) (any, error) {
			var q topicPhotosQuery
			bindQuery(params.Query, &q)
			if err := requireQuery(&q, " when requesting photos"); err != nil {
				return nil, err
			}

			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.GetTopicPhotos(ctx, domain.TopicPhotosParams{
				PageParams:    page.pageParams(),
				TopicIDOrSlug: q.TopicIDOrSlug,
				OrderBy:       q.OrderBy,
				Orientation:   q.Orientation,
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
	}
}
