package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
	"github.com/GoArmGo/UnsplashServices/internal/service"
)

// maxBodySize ограничивает тело запроса create/update/patch.
const maxBodySize = 1 << 20

// ServiceHandler — REST-обработчик одного смонтированного сервиса.
type ServiceHandler struct {
	path    string
	service service.Service
	logger  *slog.Logger
}

// NewServiceHandler создаёт обработчик для сервиса, смонтированного по path.
func NewServiceHandler(path string, svc service.Service, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{
		path:    path,
		service: svc,
		logger:  logger.With("service", path),
	}
}

// Routes возвращает роутер сервиса: GET / и /{id}, POST /, PUT, PATCH, DELETE.
func (h *ServiceHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Find)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
	r.Put("/{id}", h.Update)
	r.Patch("/", h.Patch)
	r.Patch("/{id}", h.Patch)
	r.Delete("/", h.Remove)
	r.Delete("/{id}", h.Remove)

	return r
}

func (h *ServiceHandler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Find(r.Context(), paramsFromRequest(r))
	h.respond(w, r, http.StatusOK, result, err)
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	result, err := h.service.Get(r.Context(), id, paramsFromRequest(r))
	h.respond(w, r, http.StatusOK, result, err)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := decodeData(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	result, err := h.service.Create(r.Context(), data, paramsFromRequest(r))
	h.respond(w, r, http.StatusCreated, result, err)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	data, err := decodeData(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	id, err := resourceID(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	result, err := h.service.Update(r.Context(), id, data, paramsFromRequest(r))
	h.respond(w, r, http.StatusOK, result, err)
}

func (h *ServiceHandler) Patch(w http.ResponseWriter, r *http.Request) {
	data, err := decodeData(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	id, err := resourceID(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	result, err := h.service.Patch(r.Context(), id, data, paramsFromRequest(r))
	h.respond(w, r, http.StatusOK, result, err)
}

func (h *ServiceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		h.respond(w, r, 0, nil, err)
		return
	}
	result, err := h.service.Remove(r.Context(), id, paramsFromRequest(r))
	h.respond(w, r, http.StatusOK, result, err)
}

func (h *ServiceHandler) respond(w http.ResponseWriter, r *http.Request, code int, result any, err error) {
	if err != nil {
		status := respondWithError(w, err, h.logger)
		if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
			h.logger.Error("service call failed", "method", r.Method, "path", r.URL.Path, "error", err)
		} else {
			h.logger.Warn("service call rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
		}
		return
	}
	respondWithJSON(w, code, result, h.logger)
}

// resourceID возвращает {id} в исходном виде. chi сопоставляет маршруты по RawPath,
// поэтому "a%2Fb" приходит экранированным и раскодируется здесь.
func resourceID(r *http.Request) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		return "", &apperrors.BadRequestError{Param: "id", Message: "Resource id is not a valid path segment"}
	}
	return id, nil
}

// paramsFromRequest переносит query-строку в Params; из повторяющихся ключей берётся первый.
func paramsFromRequest(r *http.Request) service.Params {
	values := r.URL.Query()
	query := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			query[key] = vals[0]
		}
	}
	return service.Params{Query: query}
}

// decodeData читает JSON-объект из тела запроса. Пустое тело даёт пустые данные.
func decodeData(r *http.Request) (service.Data, error) {
	data := service.Data{}
	if r.Body == nil {
		return data, nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return service.Data{}, nil
		}
		return nil, &apperrors.BadRequestError{Param: "body", Message: "Request body must be a JSON object"}
	}
	return data, nil
}

// errorBody — формат ошибки, совместимый с feathers-клиентами.
type errorBody struct {
	Name      string `json:"name"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	ClassName string `json:"className"`
	Data      any    `json:"data,omitempty"`
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой и возвращает HTTP-статус.
// Неклассифицированные ошибки отдаются как GeneralError 500.
func respondWithError(w http.ResponseWriter, err error, logger *slog.Logger) int {
	body := errorBody{
		Name:    "GeneralError",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	}

	var classified apperrors.Classified
	if errors.As(err, &classified) {
		body.Name = classified.Name()
		body.Code = classified.Code()
		body.Data = classified.Data()
		body.Message = classified.Error()
	}
	body.ClassName = className(body.Name)

	respondWithJSON(w, body.Code, body, logger)
	return body.Code
}

// className переводит "BadRequest" в "bad-request".
func className(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
