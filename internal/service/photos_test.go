package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

func TestPhotosFindSearch(t *testing.T) {
	api := newFakeAPI()
	r := newTestResource(t, KindPhotos, api)

	_, err := r.Find(context.Background(), query(
		"keyword", "cats",
		"$limit", "20",
		"$skip", "40",
		"collectionIds", "1,2",
		"contentFilter", "high",
		"color", "green",
		"orderBy", "latest",
		"orientation", "squarish",
		"lang", "de",
	))
	if err != nil {
		t.Fatal(err)
	}

	want := domain.SearchPhotosParams{
		PageParams:    domain.PageParams{Page: 3, PerPage: 20},
		Query:         "cats",
		Orientation:   "squarish",
		CollectionIDs: []string{"1", "2"},
		ContentFilter: "high",
		Color:         "green",
		OrderBy:       "latest",
		Lang:          "de",
	}
	if got := api.Calls()[0].params; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPhotosGetRandom(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Success(domain.Item{"id": "rnd"}, 200)
	r := newTestResource(t, KindPhotos, api)

	out, err := r.Get(context.Background(), "random", query(
		"keyword", "sea",
		"featured", "True",
		"username", "jane",
		"collectionIds", "10",
		"topicIds", "nature,film",
	))
	if err != nil {
		t.Fatal(err)
	}
	if out.(domain.Item).ID() != "rnd" {
		t.Errorf("unexpected result %+v", out)
	}

	calls := api.Calls()
	if len(calls) != 1 || calls[0].op != "GetRandomPhoto" {
		t.Fatalf("random must never use direct lookup: %+v", calls)
	}
	want := domain.RandomPhotoParams{
		Query:         "sea",
		Featured:      true,
		Username:      "jane",
		CollectionIDs: []string{"10"},
		TopicIDs:      []string{"nature", "film"},
	}
	if !reflect.DeepEqual(calls[0].params, want) {
		t.Errorf("expected %+v, got %+v", want, calls[0].params)
	}
}

func TestPhotosGetRandomFeaturedNormalisation(t *testing.T) {
	for value, want := range map[string]bool{"true": true, "1": false, "yes": false, "": false} {
		api := newFakeAPI()
		r := newTestResource(t, KindPhotos, api)
		if _, err := r.Get(context.Background(), "random", query("featured", value)); err != nil {
			t.Fatal(err)
		}
		if got := api.Calls()[0].params.(domain.RandomPhotoParams).Featured; got != want {
			t.Errorf("featured=%q: expected %v, got %v", value, want, got)
		}
	}
}

func TestPhotosGetRandomError(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Failure[domain.Item](domain.SourceAPI, 404, "No photos found")
	r := newTestResource(t, KindPhotos, api)

	if _, err := r.Get(context.Background(), "random", Params{}); !apperrors.IsGeneral(err) {
		t.Errorf("expected GeneralError, got %v", err)
	}
}

func TestPhotosGetStatsJoin(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Success(domain.Item{"id": "p1"}, 200)
	api.stats = domain.Success(domain.Item{"id": "p1", "downloads": map[string]any{"total": 5}}, 200)
	r := newTestResource(t, KindPhotos, api)

	out, err := r.Get(context.Background(), "p1", query("stats", "true"))
	if err != nil {
		t.Fatal(err)
	}
	stats, ok := out.(domain.Item)["stats"].(domain.Item)
	if !ok || stats["downloads"] == nil {
		t.Errorf("expected stats merged, got %+v", out)
	}

	calls := api.Calls()
	if len(calls) != 2 || calls[0].op != "GetPhoto" || calls[1].op != "GetPhotoStats" || calls[1].id != "p1" {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestPhotosGetStatsJoinDegrades(t *testing.T) {
	api := newFakeAPI()
	api.item = domain.Success(domain.Item{"id": "p1"}, 200)
	api.stats = domain.Failure[domain.Item](domain.SourceAPI, 403, "forbidden")
	r := newTestResource(t, KindPhotos, api)

	out, err := r.Get(context.Background(), "p1", query("stats", "true"))
	if err != nil {
		t.Fatalf("stats failure must not be fatal: %v", err)
	}
	if got := out.(domain.Item)["stats"]; !reflect.DeepEqual(got, domain.Item{}) {
		t.Errorf("expected empty stats object, got %#v", got)
	}
}

func TestPhotoTrackCreate(t *testing.T) {
	api := newFakeAPI()
	api.tracked = domain.Success(domain.Item{"url": "https://images.unsplash.com/photo"}, 200)
	r := newTestResource(t, KindPhotoTrack, api)

	out, err := r.Create(context.Background(), Data{"downloadLocation": "https://api.unsplash.com/photos/p1/download"}, Params{})
	if err != nil {
		t.Fatal(err)
	}
	if out.(domain.Item)["url"] != "https://images.unsplash.com/photo" {
		t.Errorf("unexpected ack %+v", out)
	}
	if calls := api.Calls(); len(calls) != 1 || calls[0].id != "https://api.unsplash.com/photos/p1/download" {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestPhotoTrackCreateValidation(t *testing.T) {
	for name, data := range map[string]Data{
		"missing":  {},
		"empty":    {"downloadLocation": ""},
		"not text": {"downloadLocation": 42},
		"nil data": nil,
	} {
		api := newFakeAPI()
		r := newTestResource(t, KindPhotoTrack, api)
		if _, err := r.Create(context.Background(), data, Params{}); !apperrors.IsBadRequest(err) {
			t.Errorf("%s: expected BadRequest, got %v", name, err)
		}
		if len(api.Calls()) != 0 {
			t.Errorf("%s: expected no upstream calls", name)
		}
	}
}

func TestPhotoTrackCreateUpstreamError(t *testing.T) {
	api := newFakeAPI()
	api.tracked = domain.Failure[domain.Item](domain.SourceAPI, 401, "OAuth error: The access token is invalid")
	r := newTestResource(t, KindPhotoTrack, api)

	_, err := r.Create(context.Background(), Data{"downloadLocation": "x"}, Params{})
	if !apperrors.IsGeneral(err) {
		t.Errorf("expected GeneralError, got %v", err)
	}
}

func TestPhotoStatisticsGet(t *testing.T) {
	api := newFakeAPI()
	api.stats = domain.Success(domain.Item{"id": "p1"}, 200)
	r := newTestResource(t, KindPhotoStatistics, api)

	out, err := r.Get(context.Background(), "p1", Params{})
	if err != nil || out.(domain.Item).ID() != "p1" {
		t.Errorf("unexpected %v %v", out, err)
	}
}
