package service

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
)

// Paginate — настройки постраничной выдачи. Нулевые значения означают
// "по умолчанию 10" и "без ограничения сверху".
type Paginate struct {
	Default int `yaml:"default" json:"default" validate:"gte=0"`
	Max     int `yaml:"max" json:"max" validate:"gte=0"`
}

// Options — конфигурация сервиса ресурса Unsplash.
type Options struct {
	AccessKey string            `json:"accessKey" validate:"required"`
	Headers   map[string]string `json:"headers"`
	Paginate  Paginate          `json:"paginate"`

	// Транспорт к Unsplash; нулевые значения заменяются значениями клиента по умолчанию.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client `validate:"-"`

	Logger *slog.Logger `validate:"-"`
}

func (o Options) validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Field() == "accessKey" {
			return apperrors.NewConfigError("accessKey", "You must provide an Unsplash `accessKey` to any Unsplash service")
		}
		return apperrors.NewConfigError(fe.Namespace(), "failed on the '"+fe.Tag()+"' rule")
	}
	return apperrors.NewConfigError("", err.Error())
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
