package service

import (
	"strconv"
	"strings"

	"github.com/GoArmGo/UnsplashServices/internal/domain"
)

const (
	defaultLimit = 10
	limitKey     = "$limit"
	skipKey      = "$skip"
)

// pagination — запрошенные skip/limit. Unsplash умеет только постраничную выдачу,
// поэтому skip округляется вниз до ближайшей страницы размера limit.
type pagination struct {
	Skip  int
	Limit int
}

// Page возвращает номер страницы Unsplash: floor(skip/limit) + 1.
func (p pagination) Page() int {
	return p.Skip/p.Limit + 1
}

func (p pagination) pageParams() domain.PageParams {
	return domain.PageParams{Page: p.Page(), PerPage: p.Limit}
}

// paginate читает $skip и $limit из query.
func paginate(query map[string]string, cfg Paginate) pagination {
	limit := cfg.Default
	if limit <= 0 {
		limit = defaultLimit
	}
	if v, ok := safeParseInt(query[limitKey]); ok && v > 0 {
		limit = v
	}
	if cfg.Max > 0 && limit > cfg.Max {
		limit = cfg.Max
	}

	skip := 0
	if v, ok := safeParseInt(query[skipKey]); ok && v > 0 {
		skip = v
	}

	return pagination{Skip: skip, Limit: limit}
}

// safeParseInt разбирает целое число в начале строки ("12abc" -> 12).
// Для строки без цифр возвращает ok == false вместо ошибки.
func safeParseInt(value string) (int, bool) {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// envelope строит конверт ответа; total и data по умолчанию 0 и [].
func envelope(feed domain.Feed, skip int) domain.Paginated {
	data := feed.Results
	if data == nil {
		data = []domain.Item{}
	}
	return domain.Paginated{
		Limit: len(data),
		Skip:  skip,
		Total: feed.Total,
		Data:  data,
	}
}
