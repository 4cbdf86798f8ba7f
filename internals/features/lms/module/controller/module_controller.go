package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	batchModel "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	dto "learnhub_backend/internals/features/lms/module/dto"
	model "learnhub_backend/internals/features/lms/module/model"
	helper "learnhub_backend/internals/helpers"
)

type ModuleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
}

func NewModuleController(db *gorm.DB, sugar *zap.SugaredLogger) *ModuleController {
	return &ModuleController{DB: db, Validator: validator.New(), Sugar: sugar}
}

// POST /api/admin/createModule
func (ctl *ModuleController) Create(c *fiber.Ctx) error {
	var req dto.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctl.DB.First(&course, req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		ctl.Sugar.Errorw("create module: course lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	module := model.ModuleModel{
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := ctl.DB.Create(&module).Error; err != nil {
		ctl.Sugar.Errorw("create module failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Module created successfully", module)
}

// PUT /api/admin/updateModule (ids in body)
func (ctl *ModuleController) Update(c *fiber.Ctx) error {
	var req dto.UpdateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Single combined lookup: a module id paired with the wrong course is a
	// 404, never a partial match.
	var module model.ModuleModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", req.ModuleID, req.CourseID).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found in the specified course")
		}
		ctl.Sugar.Errorw("update module: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Title != "" {
		module.Title = req.Title
	}
	if req.Content != "" {
		module.Content = req.Content
	}
	if err := ctl.DB.Save(&module).Error; err != nil {
		ctl.Sugar.Errorw("update module: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Module updated successfully", module)
}

// DELETE /api/admin/deleteModule/:courseId/:moduleId
func (ctl *ModuleController) Delete(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var module model.ModuleModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found in the specified course")
		}
		ctl.Sugar.Errorw("delete module: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(&module).Error; err != nil {
		ctl.Sugar.Errorw("delete module failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Module deleted successfully", nil)
}

// GET /api/admin/getAllModules/:courseId
func (ctl *ModuleController) GetAllInCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := ctl.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		ctl.Sugar.Errorw("list modules: course lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var modules []model.ModuleModel
	if err := ctl.DB.Where("course_id = ?", courseID).Order("id").Find(&modules).Error; err != nil {
		ctl.Sugar.Errorw("list modules failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(modules) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No modules found for the specified course")
	}
	return helper.Success(c, "Modules fetched successfully", modules)
}

// GET /api/student/getModulesByCourse/:courseId
// A student only sees modules of the course their batch belongs to.
func (ctl *ModuleController) GetByCourseForStudent(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var enrolled int64
	if err := ctl.DB.Model(&batchModel.StudentBatchModel{}).
		Joins("JOIN batches ON batches.id = student_batches.batch_id").
		Where("student_batches.student_id = ? AND batches.course_id = ?", studentID, courseID).
		Count(&enrolled).Error; err != nil {
		ctl.Sugar.Errorw("student modules: enrollment check failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if enrolled == 0 {
		return helper.Error(c, fiber.StatusForbidden, "Access denied: you are not enrolled in this course")
	}

	var modules []model.ModuleModel
	if err := ctl.DB.Where("course_id = ?", courseID).Order("id").Find(&modules).Error; err != nil {
		ctl.Sugar.Errorw("student modules: list failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(modules) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No modules found for this course")
	}
	return helper.Success(c, "Modules fetched successfully", modules)
}
