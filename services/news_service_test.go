package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
)

func newNewsFixture(t *testing.T) NewsService {
	t.Helper()
	db := setupTestDB(t)
	return NewNewsService(repositories.NewNewsRepository(db))
}

func validArticleRequest() models.CreateNewsArticleRequest {
	return models.CreateNewsArticleRequest{
		Title:    "Launch of new switch",
		Summary:  "A ten-plus character summary.",
		Content:  strings.Repeat("X", 60),
		Category: "Produits",
		Author:   "Jane",
	}
}

func publicList(t *testing.T, svc NewsService) []models.NewsArticle {
	t.Helper()
	articles, _, err := svc.GetArticles(models.NewsListParams{Page: 1, Limit: 50}, true)
	assert.NoError(t, err)
	return articles
}

func adminList(t *testing.T, svc NewsService) []models.NewsArticle {
	t.Helper()
	articles, _, err := svc.GetArticles(models.NewsListParams{Page: 1, Limit: 50}, false)
	assert.NoError(t, err)
	return articles
}

func TestCreateArticle_DefaultsToDraft(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())

	assert.NoError(t, err)
	assert.False(t, article.IsPublished)
	assert.Nil(t, article.PublishedDate)

	assert.Empty(t, publicList(t, svc))
	assert.Len(t, adminList(t, svc), 1)
}

func TestCreateArticle_PublishedAtCreation(t *testing.T) {
	svc := newNewsFixture(t)

	published := true
	req := validArticleRequest()
	req.IsPublished = &published

	article, err := svc.CreateArticle(req)

	assert.NoError(t, err)
	assert.True(t, article.IsPublished)
	assert.NotNil(t, article.PublishedDate)

	assert.Len(t, publicList(t, svc), 1)
}

func TestPublicListing_NeverContainsDrafts(t *testing.T) {
	svc := newNewsFixture(t)

	draft, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	published := true
	req := validArticleRequest()
	req.Title = "Partnership announcement"
	req.IsPublished = &published
	live, err := svc.CreateArticle(req)
	assert.NoError(t, err)

	// Unpublish the live one, publish the draft, then flip both again.
	_, err = svc.TogglePublish(live.ID)
	assert.NoError(t, err)
	_, err = svc.TogglePublish(draft.ID)
	assert.NoError(t, err)
	_, err = svc.TogglePublish(draft.ID)
	assert.NoError(t, err)
	_, err = svc.TogglePublish(live.ID)
	assert.NoError(t, err)

	for _, article := range publicList(t, svc) {
		assert.True(t, article.IsPublished)
	}
	assert.Len(t, adminList(t, svc), 2)
}

func TestGetArticle_PublicHidesDrafts(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	_, err = svc.GetArticle(article.ID, true)
	assert.ErrorIs(t, err, models.ErrNotFound)

	found, err := svc.GetArticle(article.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)
}

func TestTogglePublish_PreservesFirstPublishDate(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	first, err := svc.TogglePublish(article.ID)
	assert.NoError(t, err)
	assert.True(t, first.IsPublished)
	assert.NotNil(t, first.PublishedDate)
	firstDate := *first.PublishedDate

	back, err := svc.TogglePublish(article.ID)
	assert.NoError(t, err)
	assert.False(t, back.IsPublished)

	// Policy: re-publishing keeps the original publish date.
	again, err := svc.TogglePublish(article.ID)
	assert.NoError(t, err)
	assert.True(t, again.IsPublished)
	assert.Equal(t, firstDate.Unix(), again.PublishedDate.Unix())
}

func TestUpdateArticle_PartialUpdate(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	newTitle := "Launch of new payment switch"
	updated, err := svc.UpdateArticle(article.ID, models.UpdateNewsArticleRequest{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, article.Summary, updated.Summary)
	assert.Equal(t, article.Content, updated.Content)
	assert.Equal(t, article.Category, updated.Category)
	assert.False(t, updated.IsPublished)
}

func TestUpdateArticle_PublishViaUpdate(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	published := true
	updated, err := svc.UpdateArticle(article.ID, models.UpdateNewsArticleRequest{IsPublished: &published})

	assert.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.NotNil(t, updated.PublishedDate)
}

func TestUpdateArticle_ExplicitPublishedDateWins(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	backdated := article.CreatedAt.AddDate(0, -1, 0)
	published := true
	updated, err := svc.UpdateArticle(article.ID, models.UpdateNewsArticleRequest{
		IsPublished:   &published,
		PublishedDate: &backdated,
	})

	assert.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, backdated.Unix(), updated.PublishedDate.Unix())
}

func TestDeleteArticle(t *testing.T) {
	svc := newNewsFixture(t)

	article, err := svc.CreateArticle(validArticleRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteArticle(article.ID))
	_, err = svc.GetArticle(article.ID, false)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteArticle(article.ID), models.ErrNotFound)
}
