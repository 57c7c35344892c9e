package repositories

import (
	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

type NewsRepository interface {
	Create(article *models.NewsArticle) error
	GetByID(id uint) (*models.NewsArticle, error)
	GetList(params models.NewsListParams, publishedOnly bool) ([]models.NewsArticle, int64, error)
	Update(article *models.NewsArticle) error
	Delete(id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(article *models.NewsArticle) error {
	return r.db.Create(article).Error
}

func (r *newsRepository) GetByID(id uint) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *newsRepository) GetList(params models.NewsListParams, publishedOnly bool) ([]models.NewsArticle, int64, error) {
	var articles []models.NewsArticle
	var total int64

	query := r.db.Model(&models.NewsArticle{})

	// The published filter applies before counting so drafts never leak
	// through pagination totals either.
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *newsRepository) Update(article *models.NewsArticle) error {
	return r.db.Save(article).Error
}

func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsArticle{}, id).Error
}
