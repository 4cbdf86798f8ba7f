package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	courseModel "learnhub_backend/internals/features/lms/course/model"
	lessonModel "learnhub_backend/internals/features/lms/lesson/model"
	lessonRoute "learnhub_backend/internals/features/lms/lesson/route"
	moduleModel "learnhub_backend/internals/features/lms/module/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	authMw "learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/testutil"
)

type lessonFixture struct {
	app    *fiber.App
	db     *gorm.DB
	course *courseModel.CourseModel
	module *moduleModel.ModuleModel
}

func setupLessonApp(t *testing.T) *lessonFixture {
	t.Helper()
	db := testutil.NewDB(t)
	app := testutil.NewApp(t)
	sugar := zap.NewNop().Sugar()
	uploadDir := t.TempDir()

	admin := app.Group("/api/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied", userModel.RoleAdmin, userModel.RoleSuperadmin),
	)
	teacher := app.Group("/api/teacher",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied", userModel.RoleTeacher),
	)
	student := app.Group("/api/student",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied", userModel.RoleStudent),
	)
	lessonRoute.LessonAdminRoutes(admin, db, sugar, uploadDir)
	lessonRoute.LessonTeacherRoutes(teacher, db, sugar, uploadDir)
	lessonRoute.LessonStudentRoutes(student, db, sugar, uploadDir)

	course := &courseModel.CourseModel{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)
	module := &moduleModel.ModuleModel{CourseID: course.ID, Title: "Syntax"}
	require.NoError(t, db.Create(module).Error)

	return &lessonFixture{app: app, db: db, course: course, module: module}
}

func lessonPath(prefix string, id uint) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}

func lessonListPath(prefix string, fx *lessonFixture) string {
	return fmt.Sprintf("%s/%d/%d", prefix, fx.course.ID, fx.module.ID)
}

func TestLessonModerationWorkflow(t *testing.T) {
	fx := setupLessonApp(t)

	teacher := testutil.CreateUser(t, fx.db, "Teacher", "t@example.com", "secret123", userModel.RoleTeacher, true)
	teacherToken := testutil.Token(t, teacher.ID, userModel.RoleTeacher)
	adminToken := testutil.Token(t, 0, userModel.RoleSuperadmin)

	resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/teacher/createLesson", map[string]any{
		"courseId": fx.course.ID, "moduleId": fx.module.ID, "title": "Variables",
	}, teacherToken))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var lesson lessonModel.LessonModel
	require.NoError(t, fx.db.Where("title = ?", "Variables").First(&lesson).Error)
	assert.Equal(t, lessonModel.StatusPending, lesson.Status)

	t.Run("students cannot see pending lessons", func(t *testing.T) {
		studentToken := testutil.Token(t, 99, userModel.RoleStudent)
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet,
			lessonListPath("/api/student/getLessons", fx), nil, studentToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("approve publishes the lesson", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			lessonPath("/api/admin/approveLesson", lesson.ID), nil, adminToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, fx.db.First(&lesson, lesson.ID).Error)
		assert.Equal(t, lessonModel.StatusApproved, lesson.Status)
	})

	t.Run("approving an already approved lesson is an invalid transition", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			lessonPath("/api/admin/approveLesson", lesson.ID), nil, adminToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("approved lesson is visible to students", func(t *testing.T) {
		studentToken := testutil.Token(t, 99, userModel.RoleStudent)
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet,
			lessonListPath("/api/student/getLessons", fx), nil, studentToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rejected deletion request restores the lesson", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/teacher/requestDeleteLesson", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "lessonId": lesson.ID,
		}, teacherToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, fx.db.First(&lesson, lesson.ID).Error)
		require.True(t, lesson.DeletionRequested)
		require.Equal(t, lessonModel.StatusPending, lesson.Status)

		resp, err = fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			lessonPath("/api/admin/rejectLesson", lesson.ID), nil, adminToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, fx.db.First(&lesson, lesson.ID).Error)
		assert.False(t, lesson.DeletionRequested)
		assert.Equal(t, lessonModel.StatusApproved, lesson.Status)
	})

	t.Run("approved deletion request removes the lesson", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/teacher/requestDeleteLesson", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "lessonId": lesson.ID,
		}, teacherToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			lessonPath("/api/admin/approveLesson", lesson.ID), nil, adminToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		err = fx.db.First(&lessonModel.LessonModel{}, lesson.ID).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestAdminLessonChainValidation(t *testing.T) {
	fx := setupLessonApp(t)
	adminToken := testutil.Token(t, 0, userModel.RoleSuperadmin)

	otherCourse := &courseModel.CourseModel{Name: "Other Course"}
	require.NoError(t, fx.db.Create(otherCourse).Error)

	t.Run("admin-created lessons are approved immediately", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createLesson", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "title": "Functions",
		}, adminToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var lesson lessonModel.LessonModel
		require.NoError(t, fx.db.Where("title = ?", "Functions").First(&lesson).Error)
		assert.Equal(t, lessonModel.StatusApproved, lesson.Status)
	})

	t.Run("module paired with the wrong course is not found", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createLesson", map[string]any{
			"courseId": otherCourse.ID, "moduleId": fx.module.ID, "title": "Orphan",
		}, adminToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCompleteLessonIdempotent(t *testing.T) {
	fx := setupLessonApp(t)

	lesson := &lessonModel.LessonModel{
		ModuleID: fx.module.ID, CourseID: fx.course.ID,
		Title: "Loops", Status: lessonModel.StatusApproved,
	}
	require.NoError(t, fx.db.Create(lesson).Error)

	student := testutil.CreateUser(t, fx.db, "Student", "s@example.com", "secret123", userModel.RoleStudent, true)
	token := testutil.Token(t, student.ID, userModel.RoleStudent)

	for i := 0; i < 2; i++ {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/student/completeLesson", map[string]any{
			"lessonId": lesson.ID,
		}, token))
		require.NoError(t, err)
		assert.Less(t, resp.StatusCode, 300)
	}

	var count int64
	require.NoError(t, fx.db.Model(&lessonModel.LessonCompletionModel{}).
		Where("lesson_id = ? AND student_id = ?", lesson.ID, student.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLessonFeedbackScoping(t *testing.T) {
	fx := setupLessonApp(t)

	lesson := &lessonModel.LessonModel{
		ModuleID: fx.module.ID, CourseID: fx.course.ID,
		Title: "Structs", Status: lessonModel.StatusApproved,
	}
	require.NoError(t, fx.db.Create(lesson).Error)

	s1 := testutil.CreateUser(t, fx.db, "S1", "s1@example.com", "secret123", userModel.RoleStudent, true)
	s2 := testutil.CreateUser(t, fx.db, "S2", "s2@example.com", "secret123", userModel.RoleStudent, true)

	for _, s := range []*userModel.UserModel{s1, s2} {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/student/submitFeedback", map[string]any{
			"lessonId": lesson.ID, "feedback": "great lesson",
		}, testutil.Token(t, s.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("student sees only their own feedback", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/student/getFeedback", nil,
			testutil.Token(t, s1.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := testutil.DecodeBody(t, resp)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("staff sees all feedback", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/admin/getFeedback", nil,
			testutil.Token(t, 0, userModel.RoleSuperadmin)))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := testutil.DecodeBody(t, resp)
		assert.Len(t, body["data"].([]any), 2)
	})
}
