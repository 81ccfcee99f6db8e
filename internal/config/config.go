package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     string        `env:"SERVER_PORT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Настройки доступа к Unsplash
	Unsplash struct {
		AccessKey   string            `env:"UNSPLASH_ACCESS_KEY,required"`
		APIURL      string            `env:"UNSPLASH_API_URL" envDefault:"https://api.unsplash.com"`
		Headers     map[string]string `env:"UNSPLASH_HEADERS" envSeparator:"," envKeyValSeparator:":"`
		HTTPTimeout time.Duration     `env:"UNSPLASH_HTTP_TIMEOUT" envDefault:"10s"`
	}

	// Постраничная выдача по умолчанию для всех сервисов
	PaginateDefault int `env:"PAGINATE_DEFAULT"`
	PaginateMax     int `env:"PAGINATE_MAX"`

	// YAML-файл с таблицей сервисов; при пустом пути используется встроенная таблица
	ServicesFile string `env:"SERVICES_FILE"`

	// Очередь регистрации скачиваний. Без RABBITMQ_URL очередь отключена.
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"photo_track_queue"`
	}
}

// QueueEnabled сообщает, настроен ли RabbitMQ.
func (c *Config) QueueEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration from environment: %w", err)
	}

	// Вручную устанавливаем значения по умолчанию для тех полей, где они нужны
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.PaginateDefault < 0 || cfg.PaginateMax < 0 {
		return nil, fmt.Errorf("PAGINATE_DEFAULT and PAGINATE_MAX must not be negative")
	}

	return &cfg, nil
}
