package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentRoute "learnhub_backend/internals/features/lms/assignment/route"
	batchRoute "learnhub_backend/internals/features/lms/batch/route"
	courseRoute "learnhub_backend/internals/features/lms/course/route"
	lessonRoute "learnhub_backend/internals/features/lms/lesson/route"
	moduleRoute "learnhub_backend/internals/features/lms/module/route"
	quizRoute "learnhub_backend/internals/features/lms/quiz/route"
	authRoute "learnhub_backend/internals/features/users/auth/route"
	userModel "learnhub_backend/internals/features/users/user/model"
	userRoute "learnhub_backend/internals/features/users/user/route"
	authMw "learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/services/email"
)

// SetupRoutes mounts the public auth endpoints and the three role-gated API
// groups. Admin endpoints are shared by admin and superadmin.
func SetupRoutes(app *fiber.App, db *gorm.DB, mailer email.Service, sugar *zap.SugaredLogger, uploadDir string) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, mailer, sugar)

	admin := api.Group("/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied: admin privileges required", userModel.RoleAdmin, userModel.RoleSuperadmin),
	)
	userRoute.UserAdminRoutes(admin, db, sugar)
	courseRoute.CourseAdminRoutes(admin, db, sugar)
	moduleRoute.ModuleAdminRoutes(admin, db, sugar)
	lessonRoute.LessonAdminRoutes(admin, db, sugar, uploadDir)
	batchRoute.BatchAdminRoutes(admin, db, sugar)
	assignmentRoute.AssignmentStaffRoutes(admin, db, sugar, uploadDir)
	quizRoute.QuizStaffRoutes(admin, db, sugar)

	teacher := api.Group("/teacher",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied: teacher privileges required", userModel.RoleTeacher),
	)
	lessonRoute.LessonTeacherRoutes(teacher, db, sugar, uploadDir)
	batchRoute.BatchTeacherRoutes(teacher, db, sugar)
	assignmentRoute.AssignmentStaffRoutes(teacher, db, sugar, uploadDir)
	assignmentRoute.AssignmentTeacherRoutes(teacher, db, sugar, uploadDir)
	quizRoute.QuizStaffRoutes(teacher, db, sugar)

	student := api.Group("/student",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied: student privileges required", userModel.RoleStudent),
	)
	moduleRoute.ModuleStudentRoutes(student, db, sugar)
	lessonRoute.LessonStudentRoutes(student, db, sugar, uploadDir)
	batchRoute.BatchStudentRoutes(student, db, sugar)
	assignmentRoute.AssignmentStudentRoutes(student, db, sugar, uploadDir)
	quizRoute.QuizStudentRoutes(student, db, sugar)
}
