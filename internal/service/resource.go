package service

import (
	"context"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
)

// Method — метод единого интерфейса ресурса.
type Method string

const (
	MethodFind   Method = "find"
	MethodGet    Method = "get"
	MethodCreate Method = "create"
	MethodUpdate Method = "update"
	MethodPatch  Method = "patch"
	MethodRemove Method = "remove"
)

// Service — единый CRUD-интерфейс ресурса.
type Service interface {
	Find(ctx context.Context, params Params) (any, error)
	Get(ctx context.Context, id string, params Params) (any, error)
	Create(ctx context.Context, data Data, params Params) (any, error)
	Update(ctx context.Context, id string, data Data, params Params) (any, error)
	Patch(ctx context.Context, id string, data Data, params Params) (any, error)
	Remove(ctx context.Context, id string, params Params) (any, error)
}

type (
	findFunc   func(ctx context.Context, params Params) (any, error)
	getFunc    func(ctx context.Context, id string, params Params) (any, error)
	createFunc func(ctx context.Context, data Data, params Params) (any, error)
)

// Resource — сервис одного семейства ресурсов Unsplash.
// Возможности задаются набором непустых обработчиков; остальные методы
// сразу возвращают NotImplemented.
type Resource struct {
	kind   Kind
	find   findFunc
	get    getFunc
	create createFunc
}

var _ Service = (*Resource)(nil)

func (r *Resource) Kind() Kind { return r.kind }

// Supports сообщает, реализует ли ресурс метод.
func (r *Resource) Supports(m Method) bool {
	switch m {
	case MethodFind:
		return r.find != nil
	case MethodGet:
		return r.get != nil
	case MethodCreate:
		return r.create != nil
	default:
		return false
	}
}

// Methods возвращает поддерживаемые методы в порядке find, get, create.
func (r *Resource) Methods() []Method {
	var out []Method
	for _, m := range []Method{MethodFind, MethodGet, MethodCreate, MethodUpdate, MethodPatch, MethodRemove} {
		if r.Supports(m) {
			out = append(out, m)
		}
	}
	return out
}

func (r *Resource) Find(ctx context.Context, params Params) (any, error) {
	if r.find == nil {
		return nil, r.notImplemented(MethodFind)
	}
	return r.find(ctx, params)
}

func (r *Resource) Get(ctx context.Context, id string, params Params) (any, error) {
	if r.get == nil {
		return nil, r.notImplemented(MethodGet)
	}
	if id == "" {
		return nil, apperrors.NewMissingID(string(r.kind))
	}
	return r.get(ctx, id, params)
}

func (r *Resource) Create(ctx context.Context, data Data, params Params) (any, error) {
	if r.create == nil {
		return nil, r.notImplemented(MethodCreate)
	}
	return r.create(ctx, data, params)
}

func (r *Resource) Update(ctx context.Context, id string, data Data, params Params) (any, error) {
	return nil, r.notImplemented(MethodUpdate)
}

func (r *Resource) Patch(ctx context.Context, id string, data Data, params Params) (any, error) {
	return nil, r.notImplemented(MethodPatch)
}

func (r *Resource) Remove(ctx context.Context, id string, params Params) (any, error) {
	return nil, r.notImplemented(MethodRemove)
}

func (r *Resource) notImplemented(m Method) error {
	return apperrors.NewNotImplemented(string(r.kind), string(m))
}
