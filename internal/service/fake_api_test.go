package service

import (
	"context"
	"sync"
	"testing"

	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// fakeAPI записывает вызовы и возвращает заранее заданные результаты.
type fakeAPI struct {
	mu    sync.Mutex
	calls []fakeCall

	feed    domain.Result[domain.Feed]
	item    domain.Result[domain.Item]
	items   domain.Result[[]domain.Item]
	stats   domain.Result[domain.Item]
	tracked domain.Result[domain.Item]
}

type fakeCall struct {
	op     string
	id     string
	params any
}

var _ ports.UnsplashAPI = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		feed:    domain.Success(domain.Feed{}, 200),
		item:    domain.Success(domain.Item{}, 200),
		items:   domain.Success([]domain.Item{}, 200),
		stats:   domain.Success(domain.Item{}, 200),
		tracked: domain.Success(domain.Item{}, 200),
	}
}

func (f *fakeAPI) record(op, id string, params any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{op: op, id: id, params: params})
}

func (f *fakeAPI) Calls() []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeCall(nil), f.calls...)
}

func (f *fakeAPI) ListCollections(_ context.Context, p domain.ListCollectionsParams) domain.Result[domain.Feed] {
	f.record("ListCollections", "", p)
	return f.feed
}

func (f *fakeAPI) GetCollection(_ context.Context, id string) domain.Result[domain.Item] {
	f.record("GetCollection", id, nil)
	return f.item
}

func (f *fakeAPI) GetCollectionPhotos(_ context.Context, p domain.CollectionPhotosParams) domain.Result[domain.Feed] {
	f.record("GetCollectionPhotos", p.CollectionID, p)
	return f.feed
}

func (f *fakeAPI) GetRelatedCollections(_ context.Context, id string) domain.Result[[]domain.Item] {
	f.record("GetRelatedCollections", id, nil)
	return f.items
}

func (f *fakeAPI) SearchPhotos(_ context.Context, p domain.SearchPhotosParams) domain.Result[domain.Feed] {
	f.record("SearchPhotos", "", p)
	return f.feed
}

func (f *fakeAPI) GetPhoto(_ context.Context, id string) domain.Result[domain.Item] {
	f.record("GetPhoto", id, nil)
	return f.item
}

func (f *fakeAPI) GetRandomPhoto(_ context.Context, p domain.RandomPhotoParams) domain.Result[domain.Item] {
	f.record("GetRandomPhoto", "", p)
	return f.item
}

func (f *fakeAPI) GetPhotoStats(_ context.Context, id string) domain.Result[domain.Item] {
	f.record("GetPhotoStats", id, nil)
	return f.stats
}

func (f *fakeAPI) TrackDownload(_ context.Context, location string) domain.Result[domain.Item] {
	f.record("TrackDownload", location, nil)
	return f.tracked
}

func (f *fakeAPI) ListTopics(_ context.Context, p domain.ListTopicsParams) domain.Result[domain.Feed] {
	f.record("ListTopics", "", p)
	return f.feed
}

func (f *fakeAPI) GetTopic(_ context.Context, id string) domain.Result[domain.Item] {
	f.record("GetTopic", id, nil)
	return f.item
}

func (f *fakeAPI) GetTopicPhotos(_ context.Context, p domain.TopicPhotosParams) domain.Result[domain.Feed] {
	f.record("GetTopicPhotos", p.TopicIDOrSlug, p)
	return f.feed
}

func (f *fakeAPI) SearchUsers(_ context.Context, p domain.SearchUsersParams) domain.Result[domain.Feed] {
	f.record("SearchUsers", "", p)
	return f.feed
}

func (f *fakeAPI) GetUser(_ context.Context, username string) domain.Result[domain.Item] {
	f.record("GetUser", username, nil)
	return f.item
}

func (f *fakeAPI) GetUserPhotos(_ context.Context, p domain.UserFeedParams) domain.Result[domain.Feed] {
	f.record("GetUserPhotos", p.Username, p)
	return f.feed
}

func (f *fakeAPI) GetUserLikes(_ context.Context, p domain.UserFeedParams) domain.Result[domain.Feed] {
	f.record("GetUserLikes", p.Username, p)
	return f.feed
}

func newTestResource(t *testing.T, kind Kind, api ports.UnsplashAPI) *Resource {
	t.Helper()
	r, err := NewWithAPI(kind, api, Options{AccessKey: "test-key"})
	if err != nil {
		t.Fatalf("NewWithAPI(%s): %v", kind, err)
	}
	return r
}

func query(kv ...string) Params {
	q := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		q[kv[i]] = kv[i+1]
	}
	return Params{Query: q}
}
