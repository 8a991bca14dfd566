package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"recipe", "recipe"},
		{"recipes", "recipe"},
		{"Recipes", "recipe"},
		{"article", "article"},
		{"articles", "article"},
		{" ARTICLE ", "article"},
		// Anything unrecognised is treated as an article.
		{"books", "article"},
		{"", "article"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContentType(tt.input))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	for _, spelling := range []string{"favourite", "favourites", "favorite", "favorites", "FAVOURITE"} {
		assert.Equal(t, "favourite", NormalizeCategory(spelling))
	}

	// Everything else falls through to the authored listing.
	for _, spelling := range []string{"authored", "created", "liked", ""} {
		assert.Equal(t, "authored", NormalizeCategory(spelling))
	}
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		perPage  int
		expected PaginationMeta
	}{
		{
			"empty result zeroes the range",
			0, 1, 10,
			PaginationMeta{CurrentPage: 1, PerPage: 10},
		},
		{
			"middle page of 25",
			25, 2, 10,
			PaginationMeta{CurrentPage: 2, PerPage: 10, Total: 25, LastPage: 3, From: 11, To: 20},
		},
		{
			"last short page",
			25, 3, 10,
			PaginationMeta{CurrentPage: 3, PerPage: 10, Total: 25, LastPage: 3, From: 21, To: 25},
		},
		{
			"exact multiple",
			20, 2, 10,
			PaginationMeta{CurrentPage: 2, PerPage: 10, Total: 20, LastPage: 2, From: 11, To: 20},
		},
		{
			"single item",
			1, 1, 10,
			PaginationMeta{CurrentPage: 1, PerPage: 10, Total: 1, LastPage: 1, From: 1, To: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPaginationMeta(tt.total, tt.page, tt.perPage))
		})
	}
}
