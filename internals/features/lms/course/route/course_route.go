package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	courseCtl "learnhub_backend/internals/features/lms/course/controller"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := courseCtl.NewCourseController(db, sugar)

	admin.Post("/createCourse", ctl.Create)
	admin.Put("/updateCourse", ctl.Update)
	admin.Delete("/deleteCourse/:id", ctl.Delete)
	admin.Get("/getAllCourses", ctl.GetAll)
}
