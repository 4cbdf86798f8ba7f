package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/module/controller"
)

func ModuleAdminRoutes(admin fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewModuleController(db, sugar)

	admin.Post("/createModule", ctl.Create)
	admin.Put("/updateModule", ctl.Update)
	admin.Delete("/deleteModule/:courseId/:moduleId", ctl.Delete)
	admin.Get("/getAllModules/:courseId", ctl.GetAllInCourse)
}

func ModuleStudentRoutes(student fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewModuleController(db, sugar)

	student.Get("/getModulesByCourse/:courseId", ctl.GetByCourseForStudent)
}
