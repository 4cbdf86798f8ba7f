package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/assignment/controller"
)

func AssignmentStaffRoutes(staff fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewAssignmentController(db, sugar, uploadDir)

	staff.Post("/createAssignment", ctl.Create)
	staff.Put("/updateAssignment/:assignmentId", ctl.Update)
	staff.Delete("/deleteAssignment/:assignmentId", ctl.Delete)
	staff.Post("/postAssignmentFeedback/:submissionId", ctl.PostFeedback)
	staff.Get("/getAssignedCourses/:studentId", ctl.GetAssignedCourses)
}

func AssignmentTeacherRoutes(teacher fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewAssignmentController(db, sugar, uploadDir)

	teacher.Get("/getTeacherCoursesAndStudents", ctl.GetTeacherCoursesAndStudents)
}

func AssignmentStudentRoutes(student fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) {
	ctl := controller.NewAssignmentController(db, sugar, uploadDir)

	student.Post("/:userId/submitAssignment/:assignmentId", ctl.Submit)
	student.Get("/getAssignmentFeedback/:submissionId", ctl.GetFeedback)
	student.Get("/getStudentCourses", ctl.GetStudentCourses)
	student.Get("/getAssignedCourses/:studentId", ctl.GetAssignedCourses)
}
