package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoArmGo/UnsplashServices/internal/apperrors"
)

// Params — параметры вызова сервиса. Query содержит $limit, $skip и фильтры ресурса
// в виде строк, как их разобрал вызывающий фреймворк.
type Params struct {
	Query map[string]string
}

// Data — тело запроса create/update/patch.
type Data map[string]any

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В сообщениях об ошибках используется имя query-параметра, а не поля структуры.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})
	return v
}

// bindQuery копирует значения query в строковые поля dst с тегом `query`.
func bindQuery(query map[string]string, dst any) {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("query")
		if name == "" || v.Field(i).Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(query[name])
	}
}

// requireQuery проверяет обязательные фильтры. what дописывается к подсказке.
func requireQuery(dst any, what string) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewBadRequest(verrs[0].Field(), what)
	}
	return fmt.Errorf("validate query: %w", err)
}

// parseBool: только строка "true" без учёта регистра и пробелов считается истиной.
func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// splitList разбивает список через запятую, отбрасывая пустые элементы.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
