package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
)

type AdminUserService interface {
	CreateAdminUser(req models.CreateAdminUserRequest) (*models.AdminUser, error)
	UpdateAdminUser(id uint, req models.UpdateAdminUserRequest) (*models.AdminUser, error)
	DeleteAdminUser(id uint) error
	ListAdminUsers() ([]models.AdminUser, error)
}

type adminUserService struct {
	userRepo repositories.AdminUserRepository
}

func NewAdminUserService(userRepo repositories.AdminUserRepository) AdminUserService {
	return &adminUserService{userRepo: userRepo}
}

func (s *adminUserService) CreateAdminUser(req models.CreateAdminUserRequest) (*models.AdminUser, error) {
	if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing.ID != 0 {
		return nil, models.ErrDuplicateUser
	}
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing.ID != 0 {
		return nil, models.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}

	user := &models.AdminUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateUser
		}
		return nil, err
	}

	return user, nil
}

func (s *adminUserService) UpdateAdminUser(id uint, req models.UpdateAdminUserRequest) (*models.AdminUser, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	// A superadmin cannot be demoted or deactivated, for the same reason
	// it cannot be deleted.
	if user.Role == models.RoleSuperadmin {
		if req.Role != nil && *req.Role != models.RoleSuperadmin {
			return nil, models.ErrForbidden
		}
		if req.Active != nil && !*req.Active {
			return nil, models.ErrForbidden
		}
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAdminUser refuses to remove a superadmin regardless of who the
// caller is; this is a standing product invariant, not a UI hint.
func (s *adminUserService) DeleteAdminUser(id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if user.Role == models.RoleSuperadmin {
		return models.ErrForbidden
	}

	return s.userRepo.Delete(id)
}

func (s *adminUserService) ListAdminUsers() ([]models.AdminUser, error) {
	return s.userRepo.GetAll()
}
