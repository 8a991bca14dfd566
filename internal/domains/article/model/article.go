package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lib/pq"
)

var ErrArticleNotFound = errors.New("article not found")

// Article mirrors the articles table.
type Article struct {
	ArticleID          int64          `json:"article_id" db:"article_id"`
	ArticleTitle       string         `json:"article_title" db:"article_title"`
	ArticleSummary     string         `json:"article_summary" db:"article_summary"`
	ArticleContent     string         `json:"article_content" db:"article_content"`
	ArticleAuthor      string         `json:"article_author" db:"article_author"`
	ArticleCategory    string         `json:"article_category" db:"article_category"`
	Tags               pq.StringArray `json:"tags" db:"tags"`
	ReadTime           string         `json:"read_time" db:"read_time"`
	Views              *int           `json:"views" db:"views"`
	Rating             *float64       `json:"rating" db:"rating"`
	ImagePath          string         `json:"image_path" db:"image_path"`
	ArticleSlug        string         `json:"article_slug" db:"article_slug"`
	ArticlePublishDate time.Time      `json:"article_publish_date" db:"article_publish_date"`
}

// ListItem is the frontend card shape for the article listing. Summary is
// renamed to excerpt and the nullable engagement columns get display
// defaults.
type ListItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ReadTime    string    `json:"read_time"`
	Views       int       `json:"views"`
	Rating      float64   `json:"rating"`
	ImagePath   string    `json:"image_path"`
	Slug        string    `json:"slug"`
	PublishDate time.Time `json:"publish_date"`
}

const defaultReadTime = "5 min read"

// ToListItem applies the card transformation.
func (a Article) ToListItem() ListItem {
	item := ListItem{
		ID:          a.ArticleID,
		Title:       a.ArticleTitle,
		Excerpt:     a.ArticleSummary,
		Author:      a.ArticleAuthor,
		Category:    a.ArticleCategory,
		Tags:        a.Tags,
		ReadTime:    a.ReadTime,
		ImagePath:   a.ImagePath,
		Slug:        a.ArticleSlug,
		PublishDate: a.ArticlePublishDate,
	}
	if item.ReadTime == "" {
		item.ReadTime = defaultReadTime
	}
	if a.Views != nil {
		item.Views = *a.Views
	}
	if a.Rating != nil {
		item.Rating = *a.Rating
	}
	return item
}

// CreateArticleRequest is the payload for POST /api/articles.
type CreateArticleRequest struct {
	ArticleTitle    string   `json:"article_title"`
	ArticleSummary  string   `json:"article_summary"`
	ArticleContent  string   `json:"article_content"`
	ArticleAuthor   string   `json:"article_author"`
	ArticleCategory string   `json:"article_category"`
	Tags            []string `json:"tags"`
	ReadTime        string   `json:"read_time"`
	ImagePath       string   `json:"image_path"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleTitle, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.ArticleSummary, validation.Length(0, 500)),
		validation.Field(&r.ArticleContent, validation.Required),
		validation.Field(&r.ArticleAuthor, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ArticleCategory, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.ImagePath, validation.Length(0, 255)),
	)
}

// UpdateArticleRequest carries partial updates; nil means "leave unchanged".
type UpdateArticleRequest struct {
	ArticleTitle    *string  `json:"article_title"`
	ArticleSummary  *string  `json:"article_summary"`
	ArticleContent  *string  `json:"article_content"`
	ArticleAuthor   *string  `json:"article_author"`
	ArticleCategory *string  `json:"article_category"`
	Tags            []string `json:"tags"`
	ReadTime        *string  `json:"read_time"`
	ImagePath       *string  `json:"image_path"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleTitle, validation.NilOrNotEmpty, validation.Length(1, 150)),
		validation.Field(&r.ArticleSummary, validation.Length(0, 500)),
		validation.Field(&r.ArticleContent, validation.NilOrNotEmpty),
		validation.Field(&r.ArticleAuthor, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.ArticleCategory, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.ImagePath, validation.Length(0, 255)),
	)
}

// ApplyTo writes the non-nil fields onto an existing article. TitleChanged
// tells the service whether the slug needs regenerating.
func (r UpdateArticleRequest) ApplyTo(article *Article) (titleChanged bool) {
	if r.ArticleTitle != nil && *r.ArticleTitle != article.ArticleTitle {
		article.ArticleTitle = *r.ArticleTitle
		titleChanged = true
	}
	if r.ArticleSummary != nil {
		article.ArticleSummary = *r.ArticleSummary
	}
	if r.ArticleContent != nil {
		article.ArticleContent = *r.ArticleContent
	}
	if r.ArticleAuthor != nil {
		article.ArticleAuthor = *r.ArticleAuthor
	}
	if r.ArticleCategory != nil {
		article.ArticleCategory = *r.ArticleCategory
	}
	if r.Tags != nil {
		article.Tags = r.Tags
	}
	if r.ReadTime != nil {
		article.ReadTime = *r.ReadTime
	}
	if r.ImagePath != nil {
		article.ImagePath = *r.ImagePath
	}
	return titleChanged
}

func (r CreateArticleRequest) ToEntity(slug string) *Article {
	return &Article{
		ArticleTitle:       r.ArticleTitle,
		ArticleSummary:     r.ArticleSummary,
		ArticleContent:     r.ArticleContent,
		ArticleAuthor:      r.ArticleAuthor,
		ArticleCategory:    r.ArticleCategory,
		Tags:               r.Tags,
		ReadTime:           r.ReadTime,
		ImagePath:          r.ImagePath,
		ArticleSlug:        slug,
		ArticlePublishDate: time.Now(),
	}
}
