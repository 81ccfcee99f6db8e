package service

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/GoArmGo/UnsplashServices/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
)

// Kind — семейство ресурсов Unsplash.
type Kind string

const (
	KindCollections        Kind = "collections"
	KindCollectionPhotos   Kind = "collection-photos"
	KindPhotos             Kind = "photos"
	KindPhotoTrack         Kind = "photo-track"
	KindPhotoStatistics    Kind = "photo-statistics"
	KindRelatedCollections Kind = "related-collections"
	KindTopics             Kind = "topics"
	KindTopicPhotos        Kind = "topic-photos"
	KindUsers              Kind = "users"
	KindUserLikes          Kind = "user-likes"
	KindUserPhotos         Kind = "user-photos"
)

// deps — общее окружение обработчиков одного ресурса.
type deps struct {
	api    ports.UnsplashAPI
	opts   Options
	label  string
	logger *slog.Logger
}

func (d deps) paginate(params Params) pagination {
	return paginate(params.Query, d.opts.Paginate)
}

type builder struct {
	label string
	build func(d deps) *Resource
}

// builders — таблица ресурсов: метка ошибки и конструктор с набором возможностей.
var builders = map[Kind]builder{
	KindCollections:        {"UnsplashCollections error", newCollections},
	KindCollectionPhotos:   {"UnsplashCollectionPhotos error", newCollectionPhotos},
	KindRelatedCollections: {"UnsplashRelatedCollections error", newRelatedCollections},
	KindPhotos:             {"UnsplashPhotos error", newPhotos},
	KindPhotoTrack:         {"UnsplashPhotoTrack error", newPhotoTrack},
	KindPhotoStatistics:    {"UnsplashPhotoStatistics error", newPhotoStatistics},
	KindTopics:             {"UnsplashTopics error", newTopics},
	KindTopicPhotos:        {"UnsplashTopicPhotos error", newTopicPhotos},
	KindUsers:              {"UnsplashUsers error", newUsers},
	KindUserLikes:          {"UnsplashUserLikes error", newUserLikes},
	KindUserPhotos:         {"UnsplashUserPhotos error", newUserPhotos},
}

// Kinds возвращает все известные семейства ресурсов в алфавитном порядке.
func Kinds() []Kind {
	out := make([]Kind, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseKind проверяет, что имя ресурса известно.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := builders[k]; !ok {
		return "", fmt.Errorf("unknown unsplash resource %q", name)
	}
	return k, nil
}

// NewAPI создаёт клиент Unsplash API по настройкам сервиса.
func NewAPI(opts Options) (ports.UnsplashAPI, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return unsplash.NewUnsplashAPIClient(unsplash.Config{
		AccessKey:  opts.AccessKey,
		BaseURL:    opts.BaseURL,
		Headers:    opts.Headers,
		Timeout:    opts.Timeout,
		HTTPClient: opts.HTTPClient,
		Logger:     opts.logger(),
	}), nil
}

// New создаёт сервис ресурса kind с собственным клиентом Unsplash.
// Без accessKey возвращает ConfigError.
func New(kind Kind, opts Options) (*Resource, error) {
	api, err := NewAPI(opts)
	if err != nil {
		return nil, err
	}
	return NewWithAPI(kind, api, opts)
}

// NewWithAPI создаёт сервис ресурса поверх готового клиента.
func NewWithAPI(kind Kind, api ports.UnsplashAPI, opts Options) (*Resource, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown unsplash resource %q", kind)
	}
	return b.build(deps{
		api:    api,
		opts:   opts,
		label:  b.label,
		logger: opts.logger().With("resource", string(kind)),
	}), nil
}
