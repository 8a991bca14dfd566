package model

import (
	"errors"
	"strings"
)

var ErrContentNotFound = errors.New("content not found")

// NormalizeContentType coerces the path segment onto a canonical content
// type: recipe spellings map to recipe, everything else is treated as
// article.
func NormalizeContentType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "recipe", "recipes":
		return "recipe"
	default:
		return "article"
	}
}

// NormalizeCategory coerces the requested relation category onto a
// canonical kind: both favourite spellings map to favourite, everything
// else is treated as authored.
func NormalizeCategory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "favourite", "favourites", "favorite", "favorites":
		return "favourite"
	default:
		return "authored"
	}
}

// PaginationMeta is the pagination block of the show-all response.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewPaginationMeta computes the pagination block. An empty result set zeroes
// last_page, from and to.
func NewPaginationMeta(total, page, perPage int) PaginationMeta {
	meta := PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
	}
	if total > 0 {
		meta.LastPage = (total + perPage - 1) / perPage
		meta.From = (page-1)*perPage + 1
		if to := page * perPage; to < total {
			meta.To = to
		} else {
			meta.To = total
		}
	}
	return meta
}

// ToggleResult reports the state after a favourite toggle.
type ToggleResult struct {
	Favourites  []int64 `json:"favourites"`
	IsFavorited bool    `json:"isFavorited"`
}

// ShowAllResult is the assembled show-all page. Items holds recipe or
// article rows depending on the requested type.
type ShowAllResult struct {
	Items      interface{}    `json:"data"`
	Type       string         `json:"type"`
	Category   string         `json:"category"`
	Pagination PaginationMeta `json:"pagination"`
}
