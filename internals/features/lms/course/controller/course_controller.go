package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/course/dto"
	model "learnhub_backend/internals/features/lms/course/model"
	helper "learnhub_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
}

func NewCourseController(db *gorm.DB, sugar *zap.SugaredLogger) *CourseController {
	return &CourseController{DB: db, Validator: validator.New(), Sugar: sugar}
}

// POST /api/admin/createCourse
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		Name:        req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := ctl.DB.Create(&course).Error; err != nil {
		ctl.Sugar.Errorw("create course failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created successfully", course)
}

// PUT /api/admin/updateCourse (id in body)
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		ctl.Sugar.Errorw("update course: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Title != "" {
		course.Name = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.StartDate != nil {
		course.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = req.EndDate
	}

	if err := ctl.DB.Save(&course).Error; err != nil {
		ctl.Sugar.Errorw("update course: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Course updated successfully", course)
}

// DELETE /api/admin/deleteCourse/:id
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		ctl.Sugar.Errorw("delete course: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(&course).Error; err != nil {
		ctl.Sugar.Errorw("delete course failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Course deleted successfully", nil)
}

// GET /api/admin/getAllCourses
func (ctl *CourseController) GetAll(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctl.DB.Order("id").Find(&courses).Error; err != nil {
		ctl.Sugar.Errorw("list courses failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(courses) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No courses found")
	}
	return helper.Success(c, "Courses fetched successfully", courses)
}
