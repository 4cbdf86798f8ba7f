package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/batch/dto"
	model "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	helper "learnhub_backend/internals/helpers"
)

type BatchController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
}

func NewBatchController(db *gorm.DB, sugar *zap.SugaredLogger) *BatchController {
	return &BatchController{DB: db, Validator: validator.New(), Sugar: sugar}
}

// POST /api/admin/createBatch
func (ctl *BatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
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
		ctl.Sugar.Errorw("create batch: course lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	batch := model.BatchModel{
		CourseID:  req.CourseID,
		BatchName: req.BatchName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := ctl.DB.Create(&batch).Error; err != nil {
		ctl.Sugar.Errorw("create batch failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Batch created successfully", batch)
}

// PUT /api/admin/updateBatch
func (ctl *BatchController) Update(c *fiber.Ctx) error {
	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", req.BatchID, req.CourseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("update batch: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.BatchName != "" {
		batch.BatchName = req.BatchName
	}
	if req.StartDate != nil {
		batch.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		batch.EndDate = *req.EndDate
	}
	if err := ctl.DB.Save(&batch).Error; err != nil {
		ctl.Sugar.Errorw("update batch: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Batch updated successfully", batch)
}

// DELETE /api/admin/deleteBatch/:courseId/:batchId
func (ctl *BatchController) Delete(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	batchID, err := helper.ParamUint(c, "batchId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var batch model.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", batchID, courseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("delete batch: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(&batch).Error; err != nil {
		ctl.Sugar.Errorw("delete batch failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Batch deleted successfully", nil)
}

// POST /api/admin/assignUserToBatch
// The stored role decides which membership table the user lands in; the role
// claimed by the request never does.
func (ctl *BatchController) AssignUser(c *fiber.Ctx) error {
	var req dto.AssignUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", req.BatchID, req.CourseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("assign user: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("assign user: user lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch user.Role {
	case userModel.RoleStudent:
		var existing model.StudentBatchModel
		err := ctl.DB.Where("student_id = ?", user.ID).First(&existing).Error
		if err == nil {
			return helper.Error(c, fiber.StatusConflict, "Student is already enrolled in a batch")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctl.Sugar.Errorw("assign user: enrollment check failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		link := model.StudentBatchModel{StudentID: user.ID, BatchID: batch.ID}
		if err := ctl.DB.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Error(c, fiber.StatusConflict, "Student is already enrolled in a batch")
			}
			ctl.Sugar.Errorw("assign user: enroll failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Student assigned to batch successfully", link)

	case userModel.RoleTeacher:
		var existing model.TeacherBatchModel
		err := ctl.DB.Where("teacher_id = ? AND batch_id = ?", user.ID, batch.ID).First(&existing).Error
		if err == nil {
			return helper.Error(c, fiber.StatusConflict, "Teacher is already assigned to this batch")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctl.Sugar.Errorw("assign user: assignment check failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		link := model.TeacherBatchModel{TeacherID: user.ID, BatchID: batch.ID}
		if err := ctl.DB.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Error(c, fiber.StatusConflict, "Teacher is already assigned to this batch")
			}
			ctl.Sugar.Errorw("assign user: assign failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher assigned to batch successfully", link)

	default:
		return helper.Error(c, fiber.StatusBadRequest, "Only students and teachers can be assigned to a batch")
	}
}

// DELETE /api/admin/deleteUserFromBatch
func (ctl *BatchController) RemoveUser(c *fiber.Ctx) error {
	var req dto.RemoveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", req.BatchID, req.CourseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("remove user: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("remove user: user lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch user.Role {
	case userModel.RoleStudent:
		res := ctl.DB.Where("student_id = ? AND batch_id = ?", user.ID, batch.ID).Delete(&model.StudentBatchModel{})
		if res.Error != nil {
			ctl.Sugar.Errorw("remove user: unenroll failed", "err", res.Error)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Student is not enrolled in this batch")
		}
		return helper.Success(c, "Student removed from batch successfully", nil)

	case userModel.RoleTeacher:
		res := ctl.DB.Where("teacher_id = ? AND batch_id = ?", user.ID, batch.ID).Delete(&model.TeacherBatchModel{})
		if res.Error != nil {
			ctl.Sugar.Errorw("remove user: unassign failed", "err", res.Error)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Teacher is not assigned to this batch")
		}
		return helper.Success(c, "Teacher removed from batch successfully", nil)

	default:
		return helper.Error(c, fiber.StatusBadRequest, "Only students and teachers can be removed from a batch")
	}
}

// POST /api/{admin|teacher}/:batchId/postLiveLink
// The link is stored on the batch and enrolled students are notified right
// away; the background notifier only covers the reminder window.
func (ctl *BatchController) PostLiveLink(c *fiber.Ctx) error {
	batchID, err := helper.ParamUint(c, "batchId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.PostLiveLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctl.DB.First(&batch, batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found")
		}
		ctl.Sugar.Errorw("post live link: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	batch.LiveLink = &req.LiveLink
	batch.LiveStartTime = &req.LiveStartTime
	if err := ctl.DB.Save(&batch).Error; err != nil {
		ctl.Sugar.Errorw("post live link: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	notified, err := NotifyBatchStudents(ctl.DB, &batch)
	if err != nil {
		ctl.Sugar.Errorw("post live link: notify failed", "batch_id", batch.ID, "err", err)
	} else {
		ctl.Sugar.Infow("live link posted", "batch_id", batch.ID, "notified", notified)
	}
	return helper.Success(c, "Live link posted successfully", batch)
}

// GET /api/student/getLiveLink/:courseId/:batchId
func (ctl *BatchController) GetLiveLink(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	batchID, err := helper.ParamUint(c, "batchId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var batch model.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", batchID, courseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("get live link: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var enrolled int64
	if err := ctl.DB.Model(&model.StudentBatchModel{}).
		Where("student_id = ? AND batch_id = ?", studentID, batch.ID).
		Count(&enrolled).Error; err != nil {
		ctl.Sugar.Errorw("get live link: enrollment check failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if enrolled == 0 {
		return helper.Error(c, fiber.StatusForbidden, "Access denied: you are not enrolled in this batch")
	}
	if batch.LiveLink == nil {
		return helper.Error(c, fiber.StatusNotFound, "No live link has been posted for this batch")
	}
	return helper.Success(c, "Live link fetched successfully", fiber.Map{
		"liveLink":      batch.LiveLink,
		"liveStartTime": batch.LiveStartTime,
	})
}

// GET /api/student/getNotifications — unread, newest first.
func (ctl *BatchController) GetNotifications(c *fiber.Ctx) error {
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var notifications []model.NotificationModel
	if err := ctl.DB.
		Where("user_id = ? AND is_read = ?", studentID, false).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		ctl.Sugar.Errorw("get notifications failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Notifications fetched successfully", notifications)
}

// NotifyBatchStudents creates one notification per enrolled student for the
// batch's current live start time, skipping students already notified for
// that exact (batch, start time).
func NotifyBatchStudents(db *gorm.DB, batch *model.BatchModel) (int, error) {
	if batch.LiveLink == nil || batch.LiveStartTime == nil {
		return 0, nil
	}

	var links []model.StudentBatchModel
	if err := db.Where("batch_id = ?", batch.ID).Find(&links).Error; err != nil {
		return 0, err
	}

	message := fmt.Sprintf("Live class for batch %q starts at %s. Join: %s",
		batch.BatchName, batch.LiveStartTime.Format("2006-01-02 15:04"), *batch.LiveLink)

	created := 0
	for _, link := range links {
		var count int64
		if err := db.Model(&model.NotificationModel{}).
			Where("user_id = ? AND batch_id = ? AND live_start_time = ?", link.StudentID, batch.ID, *batch.LiveStartTime).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		notification := model.NotificationModel{
			UserID:        link.StudentID,
			BatchID:       batch.ID,
			Message:       message,
			LiveStartTime: *batch.LiveStartTime,
		}
		if err := db.Create(&notification).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
