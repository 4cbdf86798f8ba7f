package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authRoute "learnhub_backend/internals/features/users/auth/route"
	userModel "learnhub_backend/internals/features/users/user/model"
	"learnhub_backend/internals/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t)
	mailer := &testutil.FakeMailer{}
	authRoute.AuthRoutes(app.Group("/api"), db, mailer, zap.NewNop().Sugar())

	t.Run("defaults to student role and unapproved", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/registerUser", map[string]string{
			"name": "Alice", "email": "alice@example.com", "password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var user userModel.UserModel
		require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
		assert.Equal(t, userModel.RoleStudent, user.Role)
		assert.False(t, user.Approved)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/registerUser", map[string]string{
			"name": "Bob", "email": "bob@example.com", "password": "secret123", "role": "principal",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/registerUser", map[string]string{
			"name": "Alice Again", "email": "alice@example.com", "password": "secret123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t)
	authRoute.AuthRoutes(app.Group("/api"), db, &testutil.FakeMailer{}, zap.NewNop().Sugar())

	testutil.CreateUser(t, db, "Approved", "ok@example.com", "secret123", userModel.RoleStudent, true)
	testutil.CreateUser(t, db, "Pending", "pending@example.com", "secret123", userModel.RoleStudent, false)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"unknown email", "nobody@example.com", "secret123", http.StatusNotFound},
		{"unapproved account", "pending@example.com", "secret123", http.StatusForbidden},
		{"wrong password", "ok@example.com", "wrong-pass", http.StatusUnauthorized},
		{"valid credentials", "ok@example.com", "secret123", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/login", map[string]string{
				"email": tt.email, "password": tt.password,
			}, ""))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	t.Run("successful login returns a token", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/login", map[string]string{
			"email": "ok@example.com", "password": "secret123",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, data["token"])
	})
}

func TestPasswordReset(t *testing.T) {
	db := testutil.NewDB(t)
	app := testutil.NewApp(t)
	mailer := &testutil.FakeMailer{}
	authRoute.AuthRoutes(app.Group("/api"), db, mailer, zap.NewNop().Sugar())

	testutil.CreateUser(t, db, "Carol", "carol@example.com", "oldpass123", userModel.RoleStudent, true)

	t.Run("unknown email", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/forgotPassword", map[string]string{
			"email": "ghost@example.com",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, mailer.Messages)
	})

	t.Run("sends a reset mail", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/forgotPassword", map[string]string{
			"email": "carol@example.com",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, mailer.Messages, 1)
		assert.Equal(t, "carol@example.com", mailer.Messages[0].To)
		assert.Contains(t, mailer.Messages[0].TextContent, "reset-password?token=")
	})

	t.Run("reset with garbage token fails", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/resetPassword", map[string]string{
			"token": "not-a-token", "new_password": "newpass123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reset with a valid token changes the password", func(t *testing.T) {
		var user userModel.UserModel
		require.NoError(t, db.Where("email = ?", "carol@example.com").First(&user).Error)

		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/resetPassword", map[string]string{
			"token": testutil.Token(t, user.ID, user.Role), "new_password": "newpass123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/login", map[string]string{
			"email": "carol@example.com", "password": "newpass123",
		}, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
