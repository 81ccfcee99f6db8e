package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

func TestCollectionPhotosFindTranslatesPaging(t *testing.T) {
	api := newFakeAPI()
	api.feed = domain.Success(domain.Feed{Results: []domain.Item{{"id": "p1"}}, Total: 51}, 200)
	r := newTestResource(t, KindCollectionPhotos, api)

	out, err := r.Find(context.Background(), query(
		"collectionId", "abc",
		"$limit", "5",
		"$skip", "12",
		"orientation", "portrait",
	))
	if err != nil {
		t.Fatal(err)
	}

	calls := api.Calls()
	if len(calls) != 1 || calls[0].op != "GetCollectionPhotos" {
		t.Fatalf("unexpected calls %+v", calls)
	}
	want := domain.CollectionPhotosParams{
		PageParams:   domain.PageParams{Page: 3, PerPage: 5},
		CollectionID: "abc",
		Orientation:  "portrait",
	}
	if !reflect.DeepEqual(calls[0].params, want) {
		t.Errorf("expected %+v, got %+v", want, calls[0].params)
	}

	env := out.(domain.Paginated)
	if env.Skip != 12 || env.Limit != 1 || env.Total != 51 {
		t.Errorf("unexpected envelope %+v", env)
	}
}

func TestCollectionsFindDefaults(t *testing.T) {
	api := newFakeAPI()
	r := newTestResource(t, KindCollections, api)

	if _, err := r.Find(context.Background(), Params{}); err != nil {
		t.Fatal(err)
	}
	want := domain.ListCollectionsParams{PageParams: domain.PageParams{Page: 1, PerPage: 10}}
	if got := api.Calls()[0].params; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestCollectionsGetWithoutJoin(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Success(domain.Item{"id": "xyz", "title": "Mountains"}, 200)
	r := newTestResource(t, KindCollections, api)

	out, err := r.Get(context.Background(), "xyz", query("related", "false"))
	if err != nil {
		t.Fatal(err)
	}
	item := out.(domain.Item)
	if _, ok := item["related"]; ok {
		t.Error("related must not be added without the flag")
	}
	if len(api.Calls()) != 1 {
		t.Errorf("expected a single upstream call, got %+v", api.Calls())
	}
}

func TestCollectionsGetRelatedJoin(t *testing.T) {
	related := []domain.Item{{"id": "r1"}, {"id": "r2"}}

	tests := []struct {
		name    string
		items   domain.Result[[]domain.Item]
		related []domain.Item
	}{
		{"success", domain.Success(related, 200), related},
		{"join error degrades", domain.Failure[[]domain.Item](domain.SourceAPI, 404, "Not found"), []domain.Item{}},
		{"nil response", domain.Success[[]domain.Item](nil, 200), []domain.Item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.item = domain.Success(domain.Item{"id": "xyz", "title": "Mountains"}, 200)
			api.items = tt.items
			r := newTestResource(t, KindCollections, api)

			out, err := r.Get(context.Background(), "xyz", query("related", "true"))
			if err != nil {
				t.Fatalf("join failures must not be fatal: %v", err)
			}

			item := out.(domain.Item)
			if item["title"] != "Mountains" {
				t.Errorf("primary payload lost: %+v", item)
			}
			if !reflect.DeepEqual(item["related"], tt.related) {
				t.Errorf("expected related %+v, got %+v", tt.related, item["related"])
			}

			calls := api.Calls()
			if len(calls) != 2 || calls[0].op != "GetCollection" || calls[1].op != "GetRelatedCollections" || calls[1].id != "xyz" {
				t.Errorf("unexpected calls %+v", calls)
			}
		})
	}
}

func TestCollectionsGetJoinUsesItemID(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Success(domain.Item{"id": "canonical"}, 200)
	r := newTestResource(t, KindCollections, api)

	if _, err := r.Get(context.Background(), "alias", query("related", "TRUE")); err != nil {
		t.Fatal(err)
	}
	if got := api.Calls()[1].id; got != "canonical" {
		t.Errorf("join should use the item's own id, got %q", got)
	}
}

func TestCollectionsGetPrimaryErrorIsFatal(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Failure[domain.Item](domain.SourceAPI, 404, "Couldn't find Collection")
	r := newTestResource(t, KindCollections, api)

	_, err := r.Get(context.Background(), "xyz", query("related", "true"))
	if !apperrors.IsGeneral(err) {
		t.Fatalf("expected GeneralError, got %v", err)
	}
	if len(api.Calls()) != 1 {
		t.Errorf("join must not run after a primary failure: %+v", api.Calls())
	}
}

func TestRelatedCollectionsGet(t *testing.T) {
	api := newFakeAPI()
	api.items = domain.Success[[]domain.Item](nil, 200)
	r := newTestResource(t, KindRelatedCollections, api)

	out, err := r.Get(context.Background(), "xyz", Params{})
	if err != nil {
		t.Fatal(err)
	}
	if items := out.([]domain.Item); items == nil {
		t.Error("expected empty slice")
	}

	api.items = domain.Failure[[]domain.Item](domain.SourceNetwork, 0, "connection refused")
	if _, err := r.Get(context.Background(), "xyz", Params{}); !apperrors.IsGeneral(err) {
		t.Errorf("primary related fetch errors are fatal, got %v", err)
	}
}
