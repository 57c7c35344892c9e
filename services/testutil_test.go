package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/database"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
)

var testDBCounter int64

// setupTestDB opens a uniquely named shared in-memory sqlite database
// so every pooled connection sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// createTestAdmin inserts an admin directly; MinCost keeps the tests fast.
func createTestAdmin(t *testing.T, repo repositories.AdminUserRepository, username, password string, role models.AdminRole, active bool) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.AdminUser{
		Username:     username,
		Email:        username + "@paycode.cd",
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}

	// The gorm default clause wins over a zero-value bool on insert.
	if !active {
		user.Active = false
		if err := repo.Update(user); err != nil {
			t.Fatalf("failed to deactivate test admin: %v", err)
		}
	}

	return user
}
