package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

type LeadRepository interface {
	CreateDemoRequest(req *models.DemoRequest) error
	ListDemoRequests() ([]models.DemoRequest, error)
	CreateSubscription(sub *models.NewsletterSubscription) error
	SubscriptionExists(email string) (bool, error)
	ListSubscriptions() ([]models.NewsletterSubscription, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateDemoRequest(req *models.DemoRequest) error {
	return r.db.Create(req).Error
}

func (r *leadRepository) ListDemoRequests() ([]models.DemoRequest, error) {
	var requests []models.DemoRequest
	err := r.db.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *leadRepository) CreateSubscription(sub *models.NewsletterSubscription) error {
	return r.db.Create(sub).Error
}

func (r *leadRepository) SubscriptionExists(email string) (bool, error) {
	var sub models.NewsletterSubscription
	err := r.db.Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *leadRepository) ListSubscriptions() ([]models.NewsletterSubscription, error) {
	var subs []models.NewsletterSubscription
	err := r.db.Order("created_at desc").Find(&subs).Error
	return subs, err
}
