package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/quiz/controller"
)

func QuizStaffRoutes(staff fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewQuizController(db, sugar)

	staff.Post("/createQuiz/:courseId/:batchId/:moduleId/:lessonId", ctl.Create)
	staff.Put("/updateQuiz/:quizId", ctl.Update)
	staff.Delete("/deleteQuiz/:quizId", ctl.Delete)
	staff.Post("/createQuestion/:quizId", ctl.CreateQuestion)
	staff.Put("/updateQuestion/:quizId/:questionId", ctl.UpdateQuestion)
	staff.Delete("/deleteQuestion/:quizId/:questionId", ctl.DeleteQuestion)
	staff.Get("/viewQuiz/:quizId", ctl.StaffView)
}

func QuizStudentRoutes(student fiber.Router, db *gorm.DB, sugar *zap.SugaredLogger) {
	ctl := controller.NewQuizController(db, sugar)

	student.Get("/viewQuiz/:quizId", ctl.StudentView)
	student.Post("/submitAnswer/:quizId/:questionId", ctl.SubmitAnswer)
}
