package service

import (
	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

// unwrap возвращает полезную нагрузку успешного результата или GeneralError.
func unwrap[T any](label string, res domain.Result[T]) (T, error) {
	switch res.Type {
	case domain.ResultSuccess:
		return res.Response, nil
	default:
		var zero T
		return zero, apperrors.NewGeneralError(label, res.Errors, res.Status, string(domain.ResultError))
	}
}

// joined возвращает результат вспомогательного запроса или fallback, если запрос
// завершился ошибкой. Ошибки join-запросов не пробрасываются.
func joined[T any](res domain.Result[T], fallback T) (T, bool) {
	switch res.Type {
	case domain.ResultSuccess:
		return res.Response, true
	default:
		return fallback, false
	}
}

// joinID — ключ для join-запроса: собственный id записи, иначе запрошенный id.
func joinID(item domain.Item, requested string) string {
	if id := item.ID(); id != "" {
		return id
	}
	return requested
}
