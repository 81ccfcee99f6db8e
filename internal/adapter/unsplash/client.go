// internal/adapter/unsplash/client.go
package unsplash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

const (
	DefaultBaseURL = "https://api.unsplash.com" // Базовый URL для Unsplash API
	apiVersion     = "v1"
	totalHeader    = "X-Total"
	maxErrorBody   = 4096
)

// Config — параметры клиента Unsplash API.
type Config struct {
	AccessKey  string
	BaseURL    string
	Headers    map[string]string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// UnsplashAPIClient представляет клиент для взаимодействия с Unsplash API.
// Реализует ports.UnsplashAPI.
type UnsplashAPIClient struct {
	httpClient *http.Client // HTTP-клиент для выполнения запросов
	baseURL    string
	accessKey  string
	headers    map[string]string // дополнительные заголовки на каждый запрос
	logger     *slog.Logger
}

// NewUnsplashAPIClient создает новый экземпляр UnsplashAPIClient.
func NewUnsplashAPIClient(cfg Config) *UnsplashAPIClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &UnsplashAPIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		accessKey:  cfg.AccessKey,
		headers:    headers,
		logger:     logger,
	}
}

// fetch выполняет GET-запрос к Unsplash и декодирует ответ с помощью decode.
// Любая ошибка (транспорт, статус, JSON) превращается в domain.ResultError.
func fetch[T any](ctx context.Context, c *UnsplashAPIClient, endpoint string, params url.Values, decode func(*http.Response) (T, error)) domain.Result[T] {
	start := time.Now()

	if len(params) > 0 {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Failure[T](domain.SourceNetwork, 0, fmt.Sprintf("build request: %v", err))
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("unsplash request failed", "endpoint", req.URL.Path, "error", err)
		return domain.Failure[T](domain.SourceNetwork, 0, err.Error())
	}
	defer resp.Body.Close() // Важно закрыть тело ответа

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errs := readErrors(resp)
		c.logger.Warn("unsplash returned error status",
			"endpoint", req.URL.Path,
			"status", resp.StatusCode,
			"errors", errs,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return domain.Failure[T](domain.SourceAPI, resp.StatusCode, errs...)
	}

	out, err := decode(resp)
	if err != nil {
		c.logger.Error("failed to decode unsplash response", "endpoint", req.URL.Path, "error", err)
		return domain.Failure[T](domain.SourceDecoding, resp.StatusCode, err.Error())
	}

	c.logger.Debug("unsplash request completed",
		"endpoint", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return domain.Success(out, resp.StatusCode)
}

func (c *UnsplashAPIClient) setHeaders(req *http.Request) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept-Version", apiVersion)
	req.Header.Set("Authorization", "Client-ID "+c.accessKey) // Добавляем заголовок авторизации
}

func (c *UnsplashAPIClient) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// readErrors достаёт список ошибок из тела ответа Unsplash.
// Если тело не в формате {"errors": [...]}, возвращается его текст или текст статуса.
func readErrors(resp *http.Response) []string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) // Прочитаем тело ответа для получения деталей ошибки

	var parsed UnsplashErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		return parsed.Errors
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return []string{text}
	}
	return []string{http.StatusText(resp.StatusCode)}
}

func decodeJSON(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber() // числа отдаются вызывающему без потери точности
	return dec.Decode(out)
}

func decodeItem(resp *http.Response) (domain.Item, error) {
	var item domain.Item
	if err := decodeJSON(resp.Body, &item); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return item, nil
}

func decodeItems(resp *http.Response) ([]domain.Item, error) {
	var items []domain.Item
	if err := decodeJSON(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

// decodeListFeed — списки Unsplash отдают массив, а общее число записей в заголовке X-Total.
func decodeListFeed(resp *http.Response) (domain.Feed, error) {
	items, err := decodeItems(resp)
	if err != nil {
		return domain.Feed{}, err
	}
	total, _ := strconv.Atoi(resp.Header.Get(totalHeader))
	return domain.Feed{Results: items, Total: total}, nil
}

func decodeSearchFeed(resp *http.Response) (domain.Feed, error) {
	var search UnsplashSearchResponse
	if err := decodeJSON(resp.Body, &search); err != nil {
		return domain.Feed{}, fmt.Errorf("decode search: %w", err)
	}
	return domain.Feed{Results: search.Results, Total: search.Total}, nil
}

// decodeAck — ответ на регистрацию скачивания может быть пустым.
func decodeAck(resp *http.Response) (domain.Item, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.Item{}, nil
	}
	var item domain.Item
	if err := decodeJSON(bytes.NewReader(body), &item); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return item, nil
}

func pageValues(p domain.PageParams) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("per_page", strconv.Itoa(p.PerPage))
	return params
}

func setIf(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setList(params url.Values, key string, values []string) {
	if len(values) > 0 {
		params.Set(key, strings.Join(values, ","))
	}
}
