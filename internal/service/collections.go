package service

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

type collectionPhotosQuery struct {
	CollectionID string `query:"collectionId" validate:"required"`
	OrderBy      string `query:"orderBy"`
	Orientation  string `query:"orientation"`
}

// newCollections: find отдаёт список коллекций, get коллекцию по id.
// С related=true к коллекции добавляются связанные коллекции.
func newCollections(d deps) *Resource {
	return &Resource{
		kind: KindCollections,
		find: func(ctx context.Context, params Params) (any, error) {
			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.ListCollections(ctx, domain.ListCollectionsParams{
				PageParams: page.pageParams(),
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
		get: func(ctx context.Context, id string, params Params) (any, error) {
			collection, err := unwrap(d.label, d.api.GetCollection(ctx, id))
			if err != nil {
				return nil, err
			}
			if !parseBool(params.Query["related"]) {
				return collection, nil
			}

			related, ok := joined(d.api.GetRelatedCollections(ctx, joinID(collection, id)), []domain.Item{})
			if !ok {
				d.logger.Warn("related collections unavailable", "collection_id", id)
			}
			if related == nil {
				related = []domain.Item{}
			}
			return collection.With("related", related), nil
		},
	}
}

func newCollectionPhotos(d deps) *Resource {
	return &Resource{
		kind: KindCollectionPhotos,
		find: func(ctx context.Context, params Params) (any, error) {
			var q collectionPhotosQuery
			bindQuery(params.Query, &q)
			if err := requireQuery(&q, ""); err != nil {
				return nil, err
			}

			page := d.paginate(params)
			feed, err := unwrap(d.label, d.api.GetCollectionPhotos(ctx, domain.CollectionPhotosParams{
				PageParams:   page.pageParams(),
				CollectionID: q.CollectionID,
				OrderBy:      q.OrderBy,
				Orientation:  q.Orientation,
			}))
			if err != nil {
				return nil, err
			}
			return envelope(feed, page.Skip), nil
		},
	}
}

func newRelatedCollections(d deps) *Resource {
	return &Resource{
		kind: KindRelatedCollections,
		get: func(ctx context.Context, id string, params Params) (any, error) {
			related, err := unwrap(d.label, d.api.GetRelatedCollections(ctx, id))
			if err != nil {
				return nil, err
			}
			if related == nil {
				related = []domain.Item{}
			}
			return related, nil
		},
	}
}
