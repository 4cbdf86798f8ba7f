package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userCtl "learnhub_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts user administration under the admin group; the
// caller has already attached AuthMiddleware + OnlyRoles(admin, superadmin).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := userCtl.NewUserController(db, sugar)

	admin.Get("/dashboard", ctl.Dashboard)
	admin.Post("/approveUser", ctl.ApproveUser)
	admin.Post("/createUser", ctl.CreateUser)
	admin.Put("/updateUser/:userId", ctl.UpdateUser)
	admin.Delete("/deleteUser/:userId", ctl.DeleteUser)
	admin.Post("/bulkRegisterUsers", ctl.BulkRegisterUsers)
}
