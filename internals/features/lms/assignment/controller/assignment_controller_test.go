package controller_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentModel "learnhub_backend/internals/features/lms/assignment/model"
	assignmentRoute "learnhub_backend/internals/features/lms/assignment/route"
	batchModel "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	lessonModel "learnhub_backend/internals/features/lms/lesson/model"
	moduleModel "learnhub_backend/internals/features/lms/module/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	authMw "learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/testutil"
)

type assignmentFixture struct {
	app        *fiber.App
	db         *gorm.DB
	course     *courseModel.CourseModel
	module     *moduleModel.ModuleModel
	lesson     *lessonModel.LessonModel
	batch      *batchModel.BatchModel
	assignment *assignmentModel.AssignmentModel
}

func setupAssignmentApp(t *testing.T) *assignmentFixture {
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
	assignmentRoute.AssignmentStaffRoutes(admin, db, sugar, uploadDir)
	assignmentRoute.AssignmentStaffRoutes(teacher, db, sugar, uploadDir)
	assignmentRoute.AssignmentTeacherRoutes(teacher, db, sugar, uploadDir)
	assignmentRoute.AssignmentStudentRoutes(student, db, sugar, uploadDir)

	course := &courseModel.CourseModel{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)
	module := &moduleModel.ModuleModel{CourseID: course.ID, Title: "Syntax"}
	require.NoError(t, db.Create(module).Error)
	lesson := &lessonModel.LessonModel{
		ModuleID: module.ID, CourseID: course.ID,
		Title: "Variables", Status: lessonModel.StatusApproved,
	}
	require.NoError(t, db.Create(lesson).Error)
	batch := &batchModel.BatchModel{CourseID: course.ID, BatchName: "Batch A"}
	require.NoError(t, db.Create(batch).Error)
	assignment := &assignmentModel.AssignmentModel{
		CourseID: course.ID, ModuleID: module.ID, LessonID: lesson.ID, BatchID: batch.ID,
		Title: "Homework 1", SubmissionLink: "https://forms.example.com/hw1",
	}
	require.NoError(t, db.Create(assignment).Error)

	return &assignmentFixture{
		app: app, db: db, course: course, module: module,
		lesson: lesson, batch: batch, assignment: assignment,
	}
}

func submissionRequest(t *testing.T, path, token, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if content != "" {
		require.NoError(t, w.WriteField("content", content))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCreateAssignmentValidatesChain(t *testing.T) {
	fx := setupAssignmentApp(t)
	token := testutil.Token(t, 0, userModel.RoleSuperadmin)

	t.Run("missing submission link", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createAssignment", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "lessonId": fx.lesson.ID,
			"batchId": fx.batch.ID, "title": "Homework 2",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("lesson outside the chain", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createAssignment", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "lessonId": fx.lesson.ID + 999,
			"batchId": fx.batch.ID, "title": "Homework 2", "submissionLink": "https://forms.example.com/hw2",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("valid assignment", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createAssignment", map[string]any{
			"courseId": fx.course.ID, "moduleId": fx.module.ID, "lessonId": fx.lesson.ID,
			"batchId": fx.batch.ID, "title": "Homework 2", "submissionLink": "https://forms.example.com/hw2",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestSubmitAssignment(t *testing.T) {
	fx := setupAssignmentApp(t)

	student := testutil.CreateUser(t, fx.db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	token := testutil.Token(t, student.ID, userModel.RoleStudent)
	path := fmt.Sprintf("/api/student/%d/submitAssignment/%d", student.ID, fx.assignment.ID)

	t.Run("cannot submit as someone else", func(t *testing.T) {
		otherPath := fmt.Sprintf("/api/student/%d/submitAssignment/%d", student.ID+1, fx.assignment.ID)
		resp, err := fx.app.Test(submissionRequest(t, otherPath, token, "my answer"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("gated on lesson completion", func(t *testing.T) {
		resp, err := fx.app.Test(submissionRequest(t, path, token, "my answer"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("accepted after completing the lesson", func(t *testing.T) {
		require.NoError(t, fx.db.Create(&lessonModel.LessonCompletionModel{
			LessonID: fx.lesson.ID, StudentID: student.ID,
			CourseID: fx.course.ID, ModuleID: fx.module.ID, Completed: true,
		}).Error)

		resp, err := fx.app.Test(submissionRequest(t, path, token, "my answer"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var submission assignmentModel.AssignmentSubmissionModel
		require.NoError(t, fx.db.Where("assignment_id = ? AND student_id = ?", fx.assignment.ID, student.ID).
			First(&submission).Error)
		require.NotNil(t, submission.Content)
		assert.Equal(t, "my answer", *submission.Content)
	})

	t.Run("empty submission is rejected", func(t *testing.T) {
		resp, err := fx.app.Test(submissionRequest(t, path, token, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAssignmentFeedback(t *testing.T) {
	fx := setupAssignmentApp(t)

	student := testutil.CreateUser(t, fx.db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	other := testutil.CreateUser(t, fx.db, "O", "o@example.com", "secret123", userModel.RoleStudent, true)
	teacher := testutil.CreateUser(t, fx.db, "T", "t@example.com", "secret123", userModel.RoleTeacher, true)

	content := "my answer"
	submission := &assignmentModel.AssignmentSubmissionModel{
		AssignmentID: fx.assignment.ID, StudentID: student.ID, Content: &content,
	}
	require.NoError(t, fx.db.Create(submission).Error)

	feedbackPath := fmt.Sprintf("/api/student/getAssignmentFeedback/%d", submission.ID)

	t.Run("no feedback yet", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, feedbackPath, nil,
			testutil.Token(t, student.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("teacher posts feedback", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			fmt.Sprintf("/api/teacher/postAssignmentFeedback/%d", submission.ID), map[string]any{
				"feedback": "well done",
			}, testutil.Token(t, teacher.ID, userModel.RoleTeacher)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, fx.db.First(submission, submission.ID).Error)
		require.NotNil(t, submission.FeedbackBy)
		assert.Equal(t, teacher.ID, *submission.FeedbackBy)
		assert.NotNil(t, submission.FeedbackDate)
	})

	t.Run("owner reads their feedback", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, feedbackPath, nil,
			testutil.Token(t, student.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("another student is denied", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, feedbackPath, nil,
			testutil.Token(t, other.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("superadmin grades without a recorded grader", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodPost,
			fmt.Sprintf("/api/admin/postAssignmentFeedback/%d", submission.ID), map[string]any{
				"feedback": "good work",
			}, testutil.Token(t, 0, userModel.RoleSuperadmin)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NoError(t, fx.db.First(submission, submission.ID).Error)
		require.NotNil(t, submission.Feedback)
		assert.Equal(t, "good work", *submission.Feedback)
		assert.Nil(t, submission.FeedbackBy)
	})
}

func TestStudentCourseDashboards(t *testing.T) {
	fx := setupAssignmentApp(t)

	student := testutil.CreateUser(t, fx.db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	require.NoError(t, fx.db.Create(&batchModel.StudentBatchModel{StudentID: student.ID, BatchID: fx.batch.ID}).Error)
	outsider := testutil.CreateUser(t, fx.db, "O", "o@example.com", "secret123", userModel.RoleStudent, true)

	t.Run("enrolled student lists their courses", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/student/getStudentCourses", nil,
			testutil.Token(t, student.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := testutil.DecodeBody(t, resp)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("unenrolled student has no courses", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/student/getStudentCourses", nil,
			testutil.Token(t, outsider.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("student cannot read another student's assigned courses", func(t *testing.T) {
		resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet,
			fmt.Sprintf("/api/student/getAssignedCourses/%d", student.ID), nil,
			testutil.Token(t, outsider.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestTeacherDashboard(t *testing.T) {
	fx := setupAssignmentApp(t)

	teacher := testutil.CreateUser(t, fx.db, "T", "t@example.com", "secret123", userModel.RoleTeacher, true)
	student := testutil.CreateUser(t, fx.db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	require.NoError(t, fx.db.Create(&batchModel.TeacherBatchModel{TeacherID: teacher.ID, BatchID: fx.batch.ID}).Error)
	require.NoError(t, fx.db.Create(&batchModel.StudentBatchModel{StudentID: student.ID, BatchID: fx.batch.ID}).Error)

	resp, err := fx.app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/teacher/getTeacherCoursesAndStudents", nil,
		testutil.Token(t, teacher.ID, userModel.RoleTeacher)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := testutil.DecodeBody(t, resp)
	entries := body["data"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Len(t, entry["students"].([]any), 1)
}
