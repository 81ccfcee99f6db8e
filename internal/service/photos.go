package service

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// randomID — идентификатор, по которому get возвращает случайное фото.
const randomID = "random"

type searchPhotosQuery struct {
	Keyword       string `query:"keyword" validate:"required"`
	Orientation   string `query:"orientation"`
	CollectionIDs string `query:"collectionIds"`
	ContentFilter string `query:"contentFilter"`
	Color         string `query:"color"`
	OrderBy       string `query:"orderBy"`
	Lang          string `query:"lang"`
}

type randomPhotoQuery struct {
	Keyword       string `query:"keyword"`
	Featured      string `query:"featured"`
	Username      string `query:"username"`
	CollectionIDs string `query:"collectionIds"`
	TopicIDs      string `query:"topicIds"`
}

type trackDownloadData struct {
	DownloadLocation string `json:"downloadLocation" validate:"required"`
}

// newPhotos: find ищет фото по keyword, get отдаёт фото по id или случайное фото.
// С stats=true к фото добавляется его статистика.
func newPhotos(d deps) *Resource {
	return &Resource{
		kind: KindPhotos,
		find: func(ctx context.Context, params Params) (any, error) {
			var q searchPhotosQuery
			bindQuery(params.Query, &q)
			if err := requireQuery(&q, " when searching photos"); err != nil {
				return nil, err
			}

			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.SearchPhotos(ctx, domain.SearchPhotosParams{
				PageParams:    page.pageParams(),
				Query:         q.Keyword,
				Orientation:   q.Orientation,
				CollectionIDs: splitList(q.CollectionIDs),
				ContentFilter: q.ContentFilter,
				Color:         q.Color,
				OrderBy:       q.OrderBy,
				Lang:          q.Lang,
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
		get: func(ctx context.Context, id string, params Params) (any, error) {
			var res domain.Result[domain.Item]
			if id == randomID {
				var q randomPhotoQuery
				bindQuery(params.Query, &q)
				res = d.api.GetRandomPhoto(ctx, domain.RandomPhotoParams{
					Query:         q.Keyword,
					Featured:      parseBool(q.Featured),
					Username:      q.Username,
					CollectionIDs: splitList(q.CollectionIDs),
					TopicIDs:      splitList(q.TopicIDs),
				})
			} else {
				res = d.api.GetPhoto(ctx, id)
			}

			photo, err := unwrap(d.label, res)
			if err != nil {
				return nil, err
			}
			if !parseBool(params.Query["stats"]) {
				return photo, nil
			}

			photoID := joinID(photo, id)
			stats, ok := joined(d.api.GetPhotoStats(ctx, photoID), domain.Item{})
			if !ok {
				d.logger.Warn("photo statistics unavailable", "photo_id", photoID)
			}
			if stats == nil {
				stats = domain.Item{}
			}
			return photo.With("stats", stats), nil
		},
	}
}

// newPhotoTrack: create регистрирует скачивание фото по downloadLocation.
func newPhotoTrack(d deps) *Resource {
	return &Resource{
		kind: KindPhotoTrack,
		create: func(ctx context.Context, data Data, params Params) (any, error) {
			location, _ := data["downloadLocation"].(string)
			in := trackDownloadData{DownloadLocation: location}
			if err := validate.Struct(in); err != nil {
				return nil, apperrors.NewMissingField("downloadLocation")
			}

			ack, err := unwrap(d.label, d.api.TrackDownload(ctx, in.DownloadLocation))
			if err != nil {
				return nil, err
			}
			d.logger.Info("photo download tracked", "download_location", in.DownloadLocation)
			return ack, nil
		},
	}
}

func newPhotoStatistics(d deps) *Resource {
	return &Resource{
		kind: KindPhotoStatistics,
		get: func(ctx context.Context, id string, params Params) (any, error) {
			stats, err := unwrap(d.label, d.api.GetPhotoStats(ctx, id))
			if err != nil {
				return nil, err
			}
			return stats, nil
		},
	}
}
