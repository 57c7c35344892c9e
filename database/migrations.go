package database

import (
	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.NewsArticle{},
		&models.DemoRequest{},
		&models.NewsletterSubscription{},
	)
}
