package models

// ContentType is the article type discriminator. It is immutable after
// creation.
type ContentType string

const (
	AppStory ContentType = "app-story"
	News     ContentType = "news"
)

// ContentItem is one "App Story" or "News" article.
//
// PublishDate is a full ISO datetime set at creation and never touched by
// edits. IsPublished gates visibility in every public listing query.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	PublishDate string      `json:"publishDate"`
	Type        ContentType `json:"type"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	IsPublished bool        `json:"isPublished"`
	Views       int         `json:"views"`
}

// ContentForm is the creation payload. Tags is a comma-separated string that
// is split and trimmed into ContentItem.Tags.
type ContentForm struct {
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	Type        ContentType `json:"type"`
	Tags        string      `json:"tags"`
	IsPublished bool        `json:"isPublished"`
	ImageURL    string      `json:"imageUrl,omitempty"`
}

// ContentUpdate carries a partial update for a content item. Nil fields keep
// the stored value. Tags, when non-nil, is a comma-separated string that
// replaces the stored list wholesale, empty entries included.
type ContentUpdate struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Author      *string `json:"author,omitempty"`
	Tags        *string `json:"tags,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// ContentFilter narrows content listing queries.
type ContentFilter struct {
	Type          ContentType
	PublishedOnly bool
}

func ValidContentType(t ContentType) bool {
	return t == AppStory || t == News
}
