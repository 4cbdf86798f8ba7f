package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/lesson/controller"
)

func LessonAdminRoutes(admin fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewLessonController(db, sugar, uploadDir)

	admin.Post("/createLesson", ctl.AdminCreate)
	admin.Put("/updateLesson", ctl.AdminUpdate)
	admin.Delete("/deleteLesson/:courseId/:moduleId/:lessonId", ctl.AdminDelete)
	admin.Post("/uploadLessonFile/:courseId/:moduleId/:lessonId", ctl.UploadFile)
	admin.Get("/viewLesson/:courseId/:moduleId/:lessonId", ctl.View)
	admin.Get("/getAllLessons/:courseId/:moduleId", ctl.GetAllInModule)
	admin.Get("/getAllPendingLessonRequests", ctl.GetPending)
	admin.Post("/approveLesson/:lessonId", ctl.Approve)
	admin.Post("/rejectLesson/:lessonId", ctl.Reject)
	admin.Get("/getFeedback", ctl.GetFeedback)
}

func LessonTeacherRoutes(teacher fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewLessonController(db, sugar, uploadDir)

	teacher.Post("/createLesson", ctl.TeacherCreate)
	teacher.Put("/updateLesson", ctl.TeacherUpdate)
	teacher.Post("/requestDeleteLesson", ctl.TeacherRequestDelete)
	teacher.Get("/viewLesson/:courseId/:moduleId/:lessonId", ctl.View)
	teacher.Get("/getAllLessons/:courseId/:moduleId", ctl.GetAllInModule)
	teacher.Get("/getFeedback", ctl.GetFeedback)
}

func LessonStudentRoutes(student fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewLessonController(db, sugar, uploadDir)

	student.Get("/getLessons/:courseId/:moduleId", ctl.GetForStudent)
	student.Post("/completeLesson", ctl.CompleteLesson)
	student.Post("/submitFeedback", ctl.SubmitFeedback)
	student.Get("/getFeedback", ctl.GetFeedback)
}
