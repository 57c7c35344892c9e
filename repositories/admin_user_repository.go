package repositories

import (
	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
)

type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByID(id uint) (*models.AdminUser, error)
	GetByUsername(username string) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	GetAll() ([]models.AdminUser, error)
	Update(user *models.AdminUser) error
	Delete(id uint) error
	Count() (int64, error)
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

func (r *adminUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *adminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *adminUserRepository) GetAll() ([]models.AdminUser, error) {
	var users []models.AdminUser
	err := r.db.Order("created_at asc").Find(&users).Error
	return users, err
}

func (r *adminUserRepository) Update(user *models.AdminUser) error {
	return r.db.Save(user).Error
}

func (r *adminUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.AdminUser{}, id).Error
}

func (r *adminUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}
