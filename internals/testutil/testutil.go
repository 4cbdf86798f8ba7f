package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"learnhub_backend/internals/configs"
	database "learnhub_backend/internals/databases"
	userModel "learnhub_backend/internals/features/users/user/model"
	"learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/services/email"
)

// NewDB opens a fresh in-memory database with the full schema. Every call
// gets its own named shared-cache instance so parallel tests never collide.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewApp returns a fiber app with test-grade config and ensures a JWT secret
// is present for token round-trips.
func NewApp(t *testing.T) *fiber.App {
	t.Helper()
	if configs.JWTSecret == "" {
		configs.JWTSecret = "test-secret"
	}
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

// CreateUser inserts an approved user with a bcrypt-hashed password.
func CreateUser(t *testing.T, db *gorm.DB, name, emailAddr, password, role string, approved bool) *userModel.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &userModel.UserModel{
		Name:     name,
		Email:    emailAddr,
		Password: string(hash),
		Role:     role,
		Approved: approved,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// Token signs a bearer token the way the login endpoints do.
func Token(t *testing.T, userID uint, role string) string {
	t.Helper()
	if configs.JWTSecret == "" {
		configs.JWTSecret = "test-secret"
	}
	token, err := auth.SignToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

// FakeMailer captures outgoing mail for assertions.
type FakeMailer struct {
	Messages []email.Message
}

func (f *FakeMailer) Send(msg email.Message) error {
	f.Messages = append(f.Messages, msg)
	return nil
}
