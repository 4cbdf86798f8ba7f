package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/lesson/dto"
	model "learnhub_backend/internals/features/lms/lesson/model"
	moduleModel "learnhub_backend/internals/features/lms/module/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/services/storage"
)

type LessonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
	UploadDir string
}

func NewLessonController(db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) *LessonController {
	return &LessonController{DB: db, Validator: validator.New(), Sugar: sugar, UploadDir: uploadDir}
}

// findModuleInCourse re-derives the course→module chain; a module id paired
// with the wrong course reads as not found.
func (ctl *LessonController) findModuleInCourse(moduleID, courseID uint) (*moduleModel.ModuleModel, error) {
	var module moduleModel.ModuleModel
	err := ctl.DB.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (ctl *LessonController) findLessonInChain(lessonID, moduleID, courseID uint) (*model.LessonModel, error) {
	var lesson model.LessonModel
	err := ctl.DB.Where("id = ? AND module_id = ? AND course_id = ?", lessonID, moduleID, courseID).First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (ctl *LessonController) createLesson(c *fiber.Ctx, status string) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctl.findModuleInCourse(req.ModuleID, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found in the specified course")
		}
		ctl.Sugar.Errorw("create lesson: module lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	lesson := model.LessonModel{
		ModuleID: req.ModuleID,
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
		Status:   status,
	}
	if req.VideoLink != "" {
		lesson.VideoLink = &req.VideoLink
	}
	if err := ctl.DB.Create(&lesson).Error; err != nil {
		ctl.Sugar.Errorw("create lesson failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	msg := "Lesson created successfully"
	if status == model.StatusPending {
		msg = "Lesson creation request submitted for approval"
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, msg, lesson)
}

// POST /api/admin/createLesson — admin-authored lessons go live immediately.
func (ctl *LessonController) AdminCreate(c *fiber.Ctx) error {
	return ctl.createLesson(c, model.StatusApproved)
}

// POST /api/teacher/createLesson — teacher-authored lessons wait for review.
func (ctl *LessonController) TeacherCreate(c *fiber.Ctx) error {
	return ctl.createLesson(c, model.StatusPending)
}

func (ctl *LessonController) updateLesson(c *fiber.Ctx, resultStatus string) error {
	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lesson, err := ctl.findLessonInChain(req.LessonID, req.ModuleID, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("update lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Content != "" {
		lesson.Content = req.Content
	}
	if req.VideoLink != "" {
		lesson.VideoLink = &req.VideoLink
	}
	lesson.Status = resultStatus
	if err := ctl.DB.Save(lesson).Error; err != nil {
		ctl.Sugar.Errorw("update lesson: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	msg := "Lesson updated successfully"
	if resultStatus == model.StatusPending {
		msg = "Lesson update submitted for approval"
	}
	return helper.Success(c, msg, lesson)
}

// PUT /api/admin/updateLesson
func (ctl *LessonController) AdminUpdate(c *fiber.Ctx) error {
	return ctl.updateLesson(c, model.StatusApproved)
}

// PUT /api/teacher/updateLesson — edits take the lesson off the air until
// re-approved.
func (ctl *LessonController) TeacherUpdate(c *fiber.Ctx) error {
	return ctl.updateLesson(c, model.StatusPending)
}

// DELETE /api/admin/deleteLesson/:courseId/:moduleId/:lessonId
func (ctl *LessonController) AdminDelete(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	lesson, err := ctl.findLessonInChain(lessonID, moduleID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("delete lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(lesson).Error; err != nil {
		ctl.Sugar.Errorw("delete lesson failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson deleted successfully", nil)
}

// POST /api/teacher/requestDeleteLesson — flips the lesson to pending and
// marks it as a deletion request so moderation can tell the two apart.
func (ctl *LessonController) TeacherRequestDelete(c *fiber.Ctx) error {
	var req dto.RequestDeleteLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lesson, err := ctl.findLessonInChain(req.LessonID, req.ModuleID, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("request delete lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	lesson.Status = model.StatusPending
	lesson.DeletionRequested = true
	if err := ctl.DB.Save(lesson).Error; err != nil {
		ctl.Sugar.Errorw("request delete lesson: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson deletion request submitted for approval", lesson)
}

// POST /api/admin/uploadLessonFile/:courseId/:moduleId/:lessonId
func (ctl *LessonController) UploadFile(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	lesson, err := ctl.findLessonInChain(lessonID, moduleID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("upload lesson file: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	path, err := storage.SaveUploadedFile(c, "file", ctl.UploadDir, storage.PDFOnly)
	if err != nil {
		if errors.Is(err, storage.ErrNoFile) {
			return helper.Error(c, fiber.StatusBadRequest, "No file uploaded")
		}
		if errors.Is(err, storage.ErrInvalidFileType) {
			return helper.Error(c, fiber.StatusBadRequest, "Only PDF files are allowed")
		}
		ctl.Sugar.Errorw("upload lesson file: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save uploaded file")
	}

	lesson.PDFPath = &path
	if err := ctl.DB.Save(lesson).Error; err != nil {
		ctl.Sugar.Errorw("upload lesson file: update failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson file uploaded successfully", fiber.Map{"pdfPath": path})
}

// GET /api/admin/viewLesson/:courseId/:moduleId/:lessonId
func (ctl *LessonController) View(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	lesson, err := ctl.findLessonInChain(lessonID, moduleID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("view lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson fetched successfully", lesson)
}

// GET /api/admin/getAllLessons/:courseId/:moduleId
func (ctl *LessonController) GetAllInModule(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := ctl.findModuleInCourse(moduleID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Module not found in the specified course")
		}
		ctl.Sugar.Errorw("list lessons: module lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var lessons []model.LessonModel
	if err := ctl.DB.Where("module_id = ? AND course_id = ?", moduleID, courseID).Order("id").Find(&lessons).Error; err != nil {
		ctl.Sugar.Errorw("list lessons failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(lessons) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No lessons found for the specified module")
	}
	return helper.Success(c, "Lessons fetched successfully", lessons)
}

// GET /api/student/getLessons/:courseId/:moduleId — approved lessons only.
func (ctl *LessonController) GetForStudent(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var lessons []model.LessonModel
	if err := ctl.DB.
		Where("module_id = ? AND course_id = ? AND status = ?", moduleID, courseID, model.StatusApproved).
		Order("id").Find(&lessons).Error; err != nil {
		ctl.Sugar.Errorw("student lessons: list failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(lessons) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No lessons found for the specified module")
	}
	return helper.Success(c, "Lessons fetched successfully", lessons)
}

// GET /api/admin/getAllPendingLessonRequests
func (ctl *LessonController) GetPending(c *fiber.Ctx) error {
	var lessons []model.LessonModel
	if err := ctl.DB.Where("status = ?", model.StatusPending).Order("id").Find(&lessons).Error; err != nil {
		ctl.Sugar.Errorw("pending lessons: list failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Pending lesson requests fetched successfully", lessons)
}

// POST /api/admin/approveLesson/:lessonId
// Approving a deletion request carries it out; approving anything else
// publishes the lesson.
func (ctl *LessonController) Approve(c *fiber.Ctx) error {
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var lesson model.LessonModel
	if err := ctl.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
		}
		ctl.Sugar.Errorw("approve lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if lesson.Status != model.StatusPending {
		return helper.Error(c, fiber.StatusBadRequest, "Only pending lessons can be approved")
	}

	if lesson.DeletionRequested {
		if err := ctl.DB.Delete(&lesson).Error; err != nil {
			ctl.Sugar.Errorw("approve lesson: delete failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.Success(c, "Lesson deletion request approved, lesson deleted", nil)
	}

	lesson.Status = model.StatusApproved
	if err := ctl.DB.Save(&lesson).Error; err != nil {
		ctl.Sugar.Errorw("approve lesson: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson approved successfully", lesson)
}

// POST /api/admin/rejectLesson/:lessonId
func (ctl *LessonController) Reject(c *fiber.Ctx) error {
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var lesson model.LessonModel
	if err := ctl.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
		}
		ctl.Sugar.Errorw("reject lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if lesson.Status != model.StatusPending {
		return helper.Error(c, fiber.StatusBadRequest, "Only pending lessons can be rejected")
	}

	if lesson.DeletionRequested {
		// Rejected deletion: the lesson goes back on the air untouched.
		lesson.DeletionRequested = false
		lesson.Status = model.StatusApproved
		if err := ctl.DB.Save(&lesson).Error; err != nil {
			ctl.Sugar.Errorw("reject lesson: save failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.Success(c, "Lesson deletion request rejected", lesson)
	}

	lesson.Status = model.StatusRejected
	if err := ctl.DB.Save(&lesson).Error; err != nil {
		ctl.Sugar.Errorw("reject lesson: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Lesson rejected", lesson)
}

// POST /api/student/completeLesson — idempotent upsert on (lesson, student).
func (ctl *LessonController) CompleteLesson(c *fiber.Ctx) error {
	var req dto.CompleteLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var lesson model.LessonModel
	if err := ctl.DB.First(&lesson, req.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
		}
		ctl.Sugar.Errorw("complete lesson: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var completion model.LessonCompletionModel
	err = ctl.DB.Where("lesson_id = ? AND student_id = ?", req.LessonID, studentID).First(&completion).Error
	switch {
	case err == nil:
		if !completion.Completed {
			completion.Completed = true
			if err := ctl.DB.Save(&completion).Error; err != nil {
				ctl.Sugar.Errorw("complete lesson: save failed", "err", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
			}
		}
		return helper.Success(c, "Lesson already marked as completed", completion)
	case errors.Is(err, gorm.ErrRecordNotFound):
		completion = model.LessonCompletionModel{
			LessonID:  req.LessonID,
			StudentID: studentID,
			CourseID:  lesson.CourseID,
			ModuleID:  lesson.ModuleID,
			Completed: true,
		}
		if err := ctl.DB.Create(&completion).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Success(c, "Lesson already marked as completed", completion)
			}
			ctl.Sugar.Errorw("complete lesson: create failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson marked as completed", completion)
	default:
		ctl.Sugar.Errorw("complete lesson: query failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/student/submitFeedback
func (ctl *LessonController) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var lesson model.LessonModel
	if err := ctl.DB.First(&lesson, req.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
		}
		ctl.Sugar.Errorw("submit feedback: lesson lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	feedback := model.FeedbackModel{
		LessonID:  req.LessonID,
		StudentID: studentID,
		Feedback:  req.Feedback,
	}
	if err := ctl.DB.Create(&feedback).Error; err != nil {
		ctl.Sugar.Errorw("submit feedback failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feedback submitted successfully", feedback)
}

// GET /api/{admin|student}/getFeedback — students see their own entries,
// staff see everything.
func (ctl *LessonController) GetFeedback(c *fiber.Ctx) error {
	query := ctl.DB.Order("id DESC")
	if helper.Role(c) == "student" {
		studentID, err := helper.UserID(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}
		query = query.Where("student_id = ?", studentID)
	}

	var feedbacks []model.FeedbackModel
	if err := query.Find(&feedbacks).Error; err != nil {
		ctl.Sugar.Errorw("get feedback failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Feedback fetched successfully", feedbacks)
}
