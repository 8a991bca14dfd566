package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToListItem(t *testing.T) {
	views := 120
	rating := 4.5

	full := Article{
		ArticleID:      1,
		ArticleTitle:   "Fermentation at Home",
		ArticleSummary: "Getting started with sourdough.",
		ArticleAuthor:  "A. Cook",
		ReadTime:       "12 min read",
		Views:          &views,
		Rating:         &rating,
	}

	item := full.ToListItem()
	assert.Equal(t, "Getting started with sourdough.", item.Excerpt)
	assert.Equal(t, "12 min read", item.ReadTime)
	assert.Equal(t, 120, item.Views)
	assert.Equal(t, 4.5, item.Rating)
}

func TestToListItemDefaults(t *testing.T) {
	bare := Article{ArticleID: 2, ArticleTitle: "Untracked"}

	item := bare.ToListItem()
	assert.Equal(t, "5 min read", item.ReadTime)
	assert.Zero(t, item.Views)
	assert.Zero(t, item.Rating)
}

func TestCreateArticleRequestValidate(t *testing.T) {
	valid := CreateArticleRequest{
		ArticleTitle:    "Knife Skills",
		ArticleContent:  "Hold the knife like this.",
		ArticleAuthor:   "A. Cook",
		ArticleCategory: "Technique",
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.ArticleTitle = ""
	assert.Error(t, missingTitle.Validate())

	missingContent := valid
	missingContent.ArticleContent = ""
	assert.Error(t, missingContent.Validate())
}
