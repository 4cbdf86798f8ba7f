package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	dto "learnhub_backend/internals/features/users/auth/dto"
	userModel "learnhub_backend/internals/features/users/user/model"
	helper "learnhub_backend/internals/helpers"
	authmw "learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/services/email"
)

const tokenTTL = time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Mailer    email.Service
	Sugar     *zap.SugaredLogger
}

func NewAuthController(db *gorm.DB, mailer email.Service, sugar *zap.SugaredLogger) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
		Mailer:    mailer,
		Sugar:     sugar,
	}
}

// POST /api/registerUser
// Self-registration: the account stays unusable until an admin or superadmin
// approves it.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role := req.Role
	if role == "" {
		role = userModel.RoleStudent
	}
	if !userModel.ValidRole(role) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid role")
	}

	var existing userModel.UserModel
	if err := ctl.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "User already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctl.Sugar.Errorw("register: email lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctl.Sugar.Errorw("register: hash failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := userModel.UserModel{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        role,
		Approved:    false,
		PhoneNumber: req.PhoneNumber,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "User already registered")
		}
		ctl.Sugar.Errorw("register: create failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", nil)
}

// POST /api/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("login: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if !user.Approved {
		return helper.Error(c, fiber.StatusForbidden, "Account not approved yet")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authmw.SignToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		ctl.Sugar.Errorw("login: sign failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Login successful", dto.LoginResponse{Token: token})
}

// POST /api/superadmin/login
// The superadmin is a configured identity, not a stored row; its token
// carries only the role.
func (ctl *AuthController) SuperadminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Email != configs.SuperadminEmail {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(configs.SuperadminPasswordHash), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authmw.SignToken(0, userModel.RoleSuperadmin, tokenTTL)
	if err != nil {
		ctl.Sugar.Errorw("superadmin login: sign failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Login successful", dto.LoginResponse{Token: token})
}

// POST /api/logout
// Tokens are short-lived and stateless; logout is an acknowledgement.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return helper.Success(c, "Logged out successfully", nil)
}

// POST /api/forgotPassword
func (ctl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User with this email not found")
		}
		ctl.Sugar.Errorw("forgot password: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	resetToken, err := authmw.SignToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		ctl.Sugar.Errorw("forgot password: sign failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", configs.ClientURL, resetToken)
	msg := email.Message{
		To:          user.Email,
		Subject:     "Password Reset Request",
		TextContent: "You requested a password reset: " + resetURL,
		HTMLContent: fmt.Sprintf(`<p>You requested a password reset. Click <a href="%s">here</a> to reset your password.</p>`, resetURL),
	}
	if err := ctl.Mailer.Send(msg); err != nil {
		ctl.Sugar.Errorw("forgot password: mail failed", "err", err, "to", user.Email)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Password reset link sent to your email", nil)
}

// POST /api/resetPassword
func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(req.Token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or expired token")
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or expired token")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, uint(rawID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("reset password: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		ctl.Sugar.Errorw("reset password: hash failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		ctl.Sugar.Errorw("reset password: update failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Password reset successfully", nil)
}
