// Package apperrors описывает классы ошибок, которые сервисы ресурсов
// возвращают вызывающему коду.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Сигнальные ошибки для errors.Is.
var (
	// ErrBadRequest — не передан обязательный параметр запроса
	ErrBadRequest = errors.New("bad request")

	// ErrGeneral — Unsplash API вернул результат с ошибкой
	ErrGeneral = errors.New("upstream failure")

	// ErrNotImplemented — ресурс не поддерживает вызванный метод
	ErrNotImplemented = errors.New("not implemented")

	// ErrMisconfigured — сервис нельзя создать с переданной конфигурацией
	ErrMisconfigured = errors.New("misconfigured")
)

// BadRequestError — обязательный фильтр или идентификатор отсутствует.
// Возвращается до любого обращения к Unsplash.
type BadRequestError struct {
	Param   string
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func (e *BadRequestError) Is(target error) bool {
	return target == ErrBadRequest
}

func (e *BadRequestError) Code() int    { return http.StatusBadRequest }
func (e *BadRequestError) Name() string { return "BadRequest" }

// Data возвращает подробности ошибки для тела ответа.
func (e *BadRequestError) Data() any {
	return map[string]any{"param": e.Param}
}

// GeneralError — Unsplash API ответил результатом с типом "error".
type GeneralError struct {
	Label  string
	Errors []string
	Status int
	Type   string
}

func (e *GeneralError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s (status %d)", e.Label, e.Status)
	}
	return fmt.Sprintf("%s (status %d): %v", e.Label, e.Status, e.Errors)
}

func (e *GeneralError) Is(target error) bool {
	return target == ErrGeneral
}

func (e *GeneralError) Code() int    { return http.StatusInternalServerError }
func (e *GeneralError) Name() string { return "GeneralError" }

func (e *GeneralError) Data() any {
	errs := e.Errors
	if errs == nil {
		errs = []string{}
	}
	return map[string]any{
		"errors": errs,
		"status": e.Status,
		"type":   e.Type,
	}
}

// NotImplementedError — метод не входит в возможности ресурса.
type NotImplementedError struct {
	Resource string
	Method   string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("method %s is not implemented by %s", e.Method, e.Resource)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

func (e *NotImplementedError) Code() int    { return http.StatusNotImplemented }
func (e *NotImplementedError) Name() string { return "NotImplemented" }

func (e *NotImplementedError) Data() any {
	return map[string]any{"resource": e.Resource, "method": e.Method}
}

// ConfigError — ошибка конфигурации при создании сервиса. Не восстанавливается.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrMisconfigured
}

// NewBadRequest создаёт BadRequestError для отсутствующего query-параметра
// с подсказкой вида "eg ?param=value".
func NewBadRequest(param, what string) error {
	return &BadRequestError{
		Param:   param,
		Message: fmt.Sprintf("Must provide %s as a query parameter%s. eg ?%s=value", param, what, param),
	}
}

// NewMissingID — не передан идентификатор записи.
func NewMissingID(resource string) error {
	return &BadRequestError{
		Param:   "id",
		Message: fmt.Sprintf("Must provide an id when requesting %s. eg /%s/value", resource, resource),
	}
}

// NewMissingField — в теле запроса нет обязательного поля.
func NewMissingField(field string) error {
	return &BadRequestError{
		Param:   field,
		Message: fmt.Sprintf("Must provide %s in the request body. eg {\"%s\": \"value\"}", field, field),
	}
}

// NewGeneralError создаёт GeneralError из полей результата Unsplash.
func NewGeneralError(label string, errs []string, status int, resultType string) error {
	return &GeneralError{Label: label, Errors: errs, Status: status, Type: resultType}
}

// NewNotImplemented создаёт NotImplementedError.
func NewNotImplemented(resource, method string) error {
	return &NotImplementedError{Resource: resource, Method: method}
}

// NewConfigError создаёт ConfigError.
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

func IsBadRequest(err error) bool     { return errors.Is(err, ErrBadRequest) }
func IsGeneral(err error) bool        { return errors.Is(err, ErrGeneral) }
func IsNotImplemented(err error) bool { return errors.Is(err, ErrNotImplemented) }
func IsMisconfigured(err error) bool  { return errors.Is(err, ErrMisconfigured) }

// Classified — ошибка, которую HTTP-слой умеет отдать в виде JSON.
type Classified interface {
	error
	Code() int
	Name() string
	Data() any
}
