package domain

// ResultType — дискриминатор результата вызова Unsplash API.
type ResultType string

const (
	ResultSuccess ResultType = "success"
	ResultError   ResultType = "error"
)

// ErrorSource указывает, на каком этапе вызов завершился ошибкой.
type ErrorSource string

const (
	SourceAPI      ErrorSource = "api"
	SourceDecoding ErrorSource = "decoding"
	SourceNetwork  ErrorSource = "network"
)

// Result — размеченный результат одного вызова Unsplash API.
// При Type == ResultError поле Response не заполняется.
type Result[T any] struct {
	Type     ResultType
	Response T
	Errors   []string
	Status   int
	Source   ErrorSource
}

// Success создаёт успешный результат.
func Success[T any](response T, status int) Result[T] {
	return Result[T]{Type: ResultSuccess, Response: response, Status: status}
}

// Failure создаёт результат с ошибкой.
func Failure[T any](source ErrorSource, status int, errs ...string) Result[T] {
	return Result[T]{Type: ResultError, Errors: errs, Status: status, Source: source}
}
