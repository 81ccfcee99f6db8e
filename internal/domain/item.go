package domain

// Item — непрозрачная запись Unsplash (коллекция, фото, тема, пользователь).
// Содержимое передаётся вызывающему без изменений.
type Item map[string]any

// ID возвращает поле "id" записи, если оно строковое.
func (i Item) ID() string {
	id, _ := i["id"].(string)
	return id
}

// With возвращает копию записи с добавленным полем.
func (i Item) With(key string, value any) Item {
	out := make(Item, len(i)+1)
	for k, v := range i {
		out[k] = v
	}
	out[key] = value
	return out
}

// Feed — страница списка или поиска в том виде, как её отдаёт клиент Unsplash.
type Feed struct {
	Results []Item
	Total   int
}

// Paginated — конверт постраничного ответа.
// Limit всегда равен len(Data).
type Paginated struct {
	Limit int    `json:"limit"`
	Skip  int    `json:"skip"`
	Total int    `json:"total"`
	Data  []Item `json:"data"`
}
