package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authCtl "learnhub_backend/internals/features/users/auth/controller"
	"learnhub_backend/internals/services/email"
)

// AuthRoutes are the only public endpoints besides /health.
func AuthRoutes(api fiber.Router, db *gorm.DB, mailer email.Service, sugar *zap.SugaredLogger) {
	ctl := authCtl.NewAuthController(db, mailer, sugar)

	api.Post("/registerUser", ctl.Register)
	api.Post("/login", ctl.Login)
	api.Post("/logout", ctl.Logout)
	api.Post("/forgotPassword", ctl.ForgotPassword)
	api.Post("/resetPassword", ctl.ResetPassword)
	api.Post("/superadmin/login", ctl.SuperadminLogin)
}
