package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

func TestTopicsFindSplitsIDs(t *testing.T) {
	api := newFakeAPI()
	r := newTestResource(t, KindTopics, api)

	if _, err := r.Find(context.Background(), query("topicIdsOrSlugs", "nature,wallpapers", "orderBy", "featured")); err != nil {
		t.Fatal(err)
	}
	want := domain.ListTopicsParams{
		PageParams:      domain.PageParams{Page: 1, PerPage: 10},
		TopicIDsOrSlugs: []string{"nature", "wallpapers"},
		OrderBy:         "featured",
	}
	if got := api.Calls()[0].params; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestTopicGetAndTopicPhotos(t *testing.T) {
	api := newFakeAPI()
	topics := newTestResource(t, KindTopics, api)
	topicPhotos := newTestResource(t, KindTopicPhotos, api)

	if _, err := topics.Get(context.Background(), "nature", Params{}); err != nil {
		t.Fatal(err)
	}
	if _, err := topicPhotos.Find(context.Background(), query("topicIdOrSlug", "nature", "$skip", "9", "$limit", "3")); err != nil {
		t.Fatal(err)
	}

	calls := api.Calls()
	if calls[0].op != "GetTopic" || calls[0].id != "nature" {
		t.Errorf("unexpected call %+v", calls[0])
	}
	want := domain.TopicPhotosParams{
		PageParams:    domain.PageParams{Page: 4, PerPage: 3},
		TopicIDOrSlug: "nature",
	}
	if !reflect.DeepEqual(calls[1].params, want) {
		t.Errorf("expected %+v, got %+v", want, calls[1].params)
	}
}

func TestUsersFindAndGet(t *testing.T) {
	api := newFakeAPI()
	r := newTestResource(t, KindUsers, api)

	if _, err := r.Find(context.Background(), query("keyword", "jane")); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get(context.Background(), "jane", Params{}); err != nil {
		t.Fatal(err)
	}

	calls := api.Calls()
	if calls[0].op != "SearchUsers" || calls[0].params.(domain.SearchUsersParams).Query != "jane" {
		t.Errorf("unexpected call %+v", calls[0])
	}
	if calls[1].op != "GetUser" || calls[1].id != "jane" {
		t.Errorf("unexpected call %+v", calls[1])
	}
}

func TestUserFeeds(t *testing.T) {
	tests := []struct {
		kind Kind
		op   string
	}{
		{KindUserLikes, "GetUserLikes"},
		{KindUserPhotos, "GetUserPhotos"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			api := newFakeAPI()
			r := newTestResource(t, tt.kind, api)

			_, err := r.Find(context.Background(), query(
				"username", "jane",
				"orderBy", "popular",
				"orientation", "landscape",
				"stats", "true",
			))
			if err != nil {
				t.Fatal(err)
			}

			call := api.Calls()[0]
			if call.op != tt.op {
				t.Fatalf("expected %s, got %s", tt.op, call.op)
			}
			want := domain.UserFeedParams{
				PageParams:  domain.PageParams{Page: 1, PerPage: 10},
				Username:    "jane",
				OrderBy:     "popular",
				Orientation: "landscape",
				Stats:       true,
			}
			if !reflect.DeepEqual(call.params, want) {
				t.Errorf("expected %+v, got %+v", want, call.params)
			}
		})
	}
}
