package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/sessionstore"
)

// bcryptCost must stay high enough to resist offline brute force.
const bcryptCost = 12

// dummyPasswordHash is compared against when the username does not
// exist, so unknown-user and wrong-password take the same time.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, *models.AdminUser, error)
	ResolveSession(ctx context.Context, token string) *models.AdminIdentity
	Logout(ctx context.Context, token string)
	EnsureBootstrapAdmin(username, email, password string) error
}

type authService struct {
	userRepo repositories.AdminUserRepository
	sessions sessionstore.Store
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repositories.AdminUserRepository, sessions sessionstore.Store, ttl time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, *models.AdminUser, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil || !user.Active {
		// Burn a hash comparison anyway; the response must not reveal
		// whether the username exists.
		bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
		return nil, nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, models.ErrInvalidCredentials
	}

	token, err := generateToken(32)
	if err != nil {
		return nil, nil, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	session := &models.Session{
		Token:     token,
		AdminID:   user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}

	return session, user, nil
}

// ResolveSession returns nil for any missing, expired or tampered
// token; not being logged in is a normal state, not an error. The user
// row is re-read so deactivation takes effect immediately.
func (s *authService) ResolveSession(ctx context.Context, token string) *models.AdminIdentity {
	if token == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil || sess == nil {
		return nil
	}

	user, err := s.userRepo.GetByID(sess.AdminID)
	if err != nil || !user.Active {
		return nil
	}

	return &models.AdminIdentity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// Logout is idempotent: destroying an unknown session is not an error.
func (s *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.sessions.Delete(ctx, token)
}

// EnsureBootstrapAdmin seeds the initial superadmin when the table is
// empty, so a fresh deployment can log in.
func (s *authService) EnsureBootstrapAdmin(username, email, password string) error {
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperadmin,
		Active:       true,
	}

	if err := s.userRepo.Create(admin); err != nil {
		if isDuplicateKey(err) {
			// Another instance won the race; the invariant holds either way.
			return nil
		}
		return err
	}
	return nil
}

func generateToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// isDuplicateKey recognizes unique-constraint violations; the insert is
// the authoritative duplicate check, any pre-check is an optimization.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
