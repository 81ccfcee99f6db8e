package unsplash

import "github.com/GoArmGo/UnsplashServices/internal/domain"

// UnsplashSearchResponse — ответ эндпоинтов /search/*
type UnsplashSearchResponse struct {
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
	Results    []domain.Item `json:"results"`
}

// UnsplashErrorResponse — тело ответа Unsplash при статусе отличном от 2xx
type UnsplashErrorResponse struct {
	Errors []string `json:"errors"`
}
