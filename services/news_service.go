package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
)

type NewsService interface {
	CreateArticle(req models.CreateNewsArticleRequest) (*models.NewsArticle, error)
	GetArticle(id uint, publicOnly bool) (*models.NewsArticle, error)
	GetArticles(params models.NewsListParams, publicOnly bool) ([]models.NewsArticle, int64, error)
	UpdateArticle(id uint, req models.UpdateNewsArticleRequest) (*models.NewsArticle, error)
	TogglePublish(id uint) (*models.NewsArticle, error)
	DeleteArticle(id uint) error
}

type newsService struct {
	newsRepo repositories.NewsRepository
	now      func() time.Time
}

func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		now:      time.Now,
	}
}

// CreateArticle stores a new article, Draft unless the payload says
// otherwise. Publishing at creation stamps the publish date when the
// payload does not carry one.
func (s *newsService) CreateArticle(req models.CreateNewsArticleRequest) (*models.NewsArticle, error) {
	article := &models.NewsArticle{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		Category:      req.Category,
		Author:        req.Author,
		ImageURLs:     models.StringList(req.ImageURLs),
		PublishedDate: req.PublishedDate,
	}

	if req.IsPublished != nil && *req.IsPublished {
		article.IsPublished = true
		if article.PublishedDate == nil {
			now := s.now()
			article.PublishedDate = &now
		}
	}

	if err := s.newsRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *newsService) GetArticle(id uint, publicOnly bool) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	// Drafts do not exist as far as the public read side is concerned.
	if publicOnly && !article.IsPublished {
		return nil, models.ErrNotFound
	}

	return article, nil
}

func (s *newsService) GetArticles(params models.NewsListParams, publicOnly bool) ([]models.NewsArticle, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	return s.newsRepo.GetList(params, publicOnly)
}

// UpdateArticle applies partial updates: nil fields keep their stored
// values, and the publication state only changes when is_published is
// present in the payload.
func (s *newsService) UpdateArticle(id uint, req models.UpdateNewsArticleRequest) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Summary != nil {
		article.Summary = *req.Summary
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Author != nil {
		article.Author = *req.Author
	}
	if req.ImageURLs != nil {
		article.ImageURLs = models.StringList(req.ImageURLs)
	}
	if req.PublishedDate != nil {
		article.PublishedDate = req.PublishedDate
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
		if article.IsPublished && article.PublishedDate == nil {
			now := s.now()
			article.PublishedDate = &now
		}
	}

	if err := s.newsRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// TogglePublish flips the publication flag. The first transition to
// Published stamps the publish date; unpublishing and re-publishing
// keeps the original stamp (an explicit date in an update payload
// always wins over the stamp).
func (s *newsService) TogglePublish(id uint) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	article.IsPublished = !article.IsPublished
	if article.IsPublished && article.PublishedDate == nil {
		now := s.now()
		article.PublishedDate = &now
	}

	if err := s.newsRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *newsService) DeleteArticle(id uint) error {
	if _, err := s.newsRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.newsRepo.Delete(id)
}
