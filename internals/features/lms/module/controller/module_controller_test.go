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

	batchModel "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	moduleModel "learnhub_backend/internals/features/lms/module/model"
	moduleRoute "learnhub_backend/internals/features/lms/module/route"
	userModel "learnhub_backend/internals/features/users/user/model"
	authMw "learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/testutil"
)

func setupModuleApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	app := testutil.NewApp(t)
	sugar := zap.NewNop().Sugar()

	admin := app.Group("/api/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied", userModel.RoleAdmin, userModel.RoleSuperadmin),
	)
	student := app.Group("/api/student",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Access denied", userModel.RoleStudent),
	)
	moduleRoute.ModuleAdminRoutes(admin, db, sugar)
	moduleRoute.ModuleStudentRoutes(student, db, sugar)
	return app, db
}

func TestModuleChainValidation(t *testing.T) {
	app, db := setupModuleApp(t)
	token := testutil.Token(t, 0, userModel.RoleSuperadmin)

	course := &courseModel.CourseModel{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)
	otherCourse := &courseModel.CourseModel{Name: "Other"}
	require.NoError(t, db.Create(otherCourse).Error)

	t.Run("create rejects an unknown course", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createModule", map[string]any{
			"courseId": 9999, "title": "Syntax",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("create in an existing course", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/admin/createModule", map[string]any{
			"courseId": course.ID, "title": "Syntax",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("update with a mismatched course is not found", func(t *testing.T) {
		var module moduleModel.ModuleModel
		require.NoError(t, db.Where("title = ?", "Syntax").First(&module).Error)

		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/api/admin/updateModule", map[string]any{
			"courseId": otherCourse.ID, "moduleId": module.ID, "title": "Renamed",
		}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestStudentModuleAccess(t *testing.T) {
	app, db := setupModuleApp(t)

	course := &courseModel.CourseModel{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)
	require.NoError(t, db.Create(&moduleModel.ModuleModel{CourseID: course.ID, Title: "Syntax"}).Error)
	batch := &batchModel.BatchModel{CourseID: course.ID, BatchName: "Batch A"}
	require.NoError(t, db.Create(batch).Error)

	enrolled := testutil.CreateUser(t, db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	require.NoError(t, db.Create(&batchModel.StudentBatchModel{StudentID: enrolled.ID, BatchID: batch.ID}).Error)
	outsider := testutil.CreateUser(t, db, "O", "o@example.com", "secret123", userModel.RoleStudent, true)

	path := fmt.Sprintf("/api/student/getModulesByCourse/%d", course.ID)

	t.Run("enrolled student sees modules", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, path, nil,
			testutil.Token(t, enrolled.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unenrolled student is denied", func(t *testing.T) {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, path, nil,
			testutil.Token(t, outsider.ID, userModel.RoleStudent)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
