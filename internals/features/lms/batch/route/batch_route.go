package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/batch/controller"
)

func BatchAdminRoutes(admin fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewBatchController(db, sugar)

	admin.Post("/createBatch", ctl.Create)
	admin.Put("/updateBatch", ctl.Update)
	admin.Delete("/deleteBatch/:courseId/:batchId", ctl.Delete)
	admin.Post("/assignUserToBatch", ctl.AssignUser)
	admin.Delete("/deleteUserFromBatch", ctl.RemoveUser)
	admin.Post("/:batchId/postLiveLink", ctl.PostLiveLink)
}

func BatchTeacherRoutes(teacher fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewBatchController(db, sugar)

	teacher.Post("/:batchId/postLiveLink", ctl.PostLiveLink)
}

func BatchStudentRoutes(student fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewBatchController(db, sugar)

	student.Get("/getNotifications", ctl.GetNotifications)
	student.Get("/getLiveLink/:courseId/:batchId", ctl.GetLiveLink)
}
