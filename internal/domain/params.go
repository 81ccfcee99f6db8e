package domain

// PageParams — параметры постраничного запроса к Unsplash.
type PageParams struct {
	Page    int
	PerPage int
}

type ListCollectionsParams struct {
	PageParams
}

type CollectionPhotosParams struct {
	PageParams
	CollectionID string
	OrderBy      string
	Orientation  string
}

type SearchPhotosParams struct {
	PageParams
	Query         string
	Orientation   string
	CollectionIDs []string
	ContentFilter string
	Color         string
	OrderBy       string
	Lang          string
}

// RandomPhotoParams — фильтры для /photos/random.
type RandomPhotoParams struct {
	Query         string
	Featured      bool
	Username      string
	CollectionIDs []string
	TopicIDs      []string
}

type ListTopicsParams struct {
	PageParams
	TopicIDsOrSlugs []string
	OrderBy         string
}

type TopicPhotosParams struct {
	PageParams
	TopicIDOrSlug string
	OrderBy       string
	Orientation   string
}

type SearchUsersParams struct {
	PageParams
	Query string
}

// UserFeedParams используется и для фото пользователя, и для его лайков.
type UserFeedParams struct {
	PageParams
	Username    string
	OrderBy     string
	Orientation string
	Stats       bool
}
