package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/lms/assignment/dto"
	model "learnhub_backend/internals/features/lms/assignment/model"
	batchModel "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	lessonModel "learnhub_backend/internals/features/lms/lesson/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/services/storage"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
	UploadDir string
}

func NewAssignmentController(db *gorm.DB, sugar *zap.SugaredLogger, uploadDir string) *AssignmentController {
	return &AssignmentController{DB: db, Validator: validator.New(), Sugar: sugar, UploadDir: uploadDir}
}

// POST /api/{admin|teacher}/createAssignment
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lesson lessonModel.LessonModel
	if err := ctl.DB.Where("id = ? AND module_id = ? AND course_id = ?", req.LessonID, req.ModuleID, req.CourseID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("create assignment: lesson lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var batch batchModel.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", req.BatchID, req.CourseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("create assignment: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	assignment := model.AssignmentModel{
		CourseID:       req.CourseID,
		ModuleID:       req.ModuleID,
		LessonID:       req.LessonID,
		BatchID:        req.BatchID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		SubmissionLink: req.SubmissionLink,
	}
	if err := ctl.DB.Create(&assignment).Error; err != nil {
		ctl.Sugar.Errorw("create assignment failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assignment created successfully", assignment)
}

// PUT /api/{admin|teacher}/updateAssignment/:assignmentId
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	assignmentID, err := helper.ParamUint(c, "assignmentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		ctl.Sugar.Errorw("update assignment: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Title != "" {
		assignment.Title = req.Title
	}
	if req.Description != "" {
		assignment.Description = req.Description
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.SubmissionLink != "" {
		assignment.SubmissionLink = req.SubmissionLink
	}
	if err := ctl.DB.Save(&assignment).Error; err != nil {
		ctl.Sugar.Errorw("update assignment: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Assignment updated successfully", assignment)
}

// DELETE /api/{admin|teacher}/deleteAssignment/:assignmentId
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	assignmentID, err := helper.ParamUint(c, "assignmentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		ctl.Sugar.Errorw("delete assignment: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(&assignment).Error; err != nil {
		ctl.Sugar.Errorw("delete assignment failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Assignment deleted successfully", nil)
}

// POST /api/student/:userId/submitAssignment/:assignmentId
// The URL's student id must match the token's; the assignment's lesson must
// already be completed by this student.
func (ctl *AssignmentController) Submit(c *fiber.Ctx) error {
	urlUserID, err := helper.ParamUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	assignmentID, err := helper.ParamUint(c, "assignmentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}
	if studentID != urlUserID {
		return helper.Error(c, fiber.StatusForbidden, "You can only submit assignments as yourself")
	}

	var assignment model.AssignmentModel
	if err := ctl.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		ctl.Sugar.Errorw("submit assignment: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var completed int64
	if err := ctl.DB.Model(&lessonModel.LessonCompletionModel{}).
		Where("lesson_id = ? AND student_id = ? AND completed = ?", assignment.LessonID, studentID, true).
		Count(&completed).Error; err != nil {
		ctl.Sugar.Errorw("submit assignment: completion check failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if completed == 0 {
		return helper.Error(c, fiber.StatusForbidden, "Complete the lesson before submitting this assignment")
	}

	submission := model.AssignmentSubmissionModel{
		AssignmentID: assignment.ID,
		StudentID:    studentID,
	}
	if content := c.FormValue("content"); content != "" {
		submission.Content = &content
	}

	path, err := storage.SaveUploadedFile(c, "file", ctl.UploadDir, storage.PDFOnly)
	switch {
	case err == nil:
		submission.FileLink = &path
	case errors.Is(err, storage.ErrNoFile):
		// text-only submission
	case errors.Is(err, storage.ErrInvalidFileType):
		return helper.Error(c, fiber.StatusBadRequest, "Only PDF files are allowed")
	default:
		ctl.Sugar.Errorw("submit assignment: file save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save uploaded file")
	}

	if submission.Content == nil && submission.FileLink == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Submission must include text content or a file")
	}

	if err := ctl.DB.Create(&submission).Error; err != nil {
		ctl.Sugar.Errorw("submit assignment failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assignment submitted successfully", submission)
}

// POST /api/{admin|teacher}/postAssignmentFeedback/:submissionId
func (ctl *AssignmentController) PostFeedback(c *fiber.Ctx) error {
	submissionID, err := helper.ParamUint(c, "submissionId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.PostFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	// Superadmin tokens carry no user id, so their feedback is recorded
	// without a grader.
	var feedbackBy *uint
	if graderID, err := helper.UserID(c); err == nil {
		feedbackBy = &graderID
	} else if helper.Role(c) != userModel.RoleSuperadmin {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var submission model.AssignmentSubmissionModel
	if err := ctl.DB.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		ctl.Sugar.Errorw("post feedback: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	now := time.Now()
	submission.Feedback = &req.Feedback
	submission.FeedbackBy = feedbackBy
	submission.FeedbackDate = &now
	if err := ctl.DB.Save(&submission).Error; err != nil {
		ctl.Sugar.Errorw("post feedback: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Feedback posted successfully", submission)
}

// GET /api/student/getAssignmentFeedback/:submissionId
func (ctl *AssignmentController) GetFeedback(c *fiber.Ctx) error {
	submissionID, err := helper.ParamUint(c, "submissionId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var submission model.AssignmentSubmissionModel
	if err := ctl.DB.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		ctl.Sugar.Errorw("get feedback: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if submission.StudentID != studentID {
		return helper.Error(c, fiber.StatusForbidden, "You can only view feedback on your own submissions")
	}
	if submission.Feedback == nil {
		return helper.Error(c, fiber.StatusNotFound, "No feedback has been posted for this submission")
	}
	return helper.Success(c, "Feedback fetched successfully", fiber.Map{
		"feedback":     submission.Feedback,
		"feedbackBy":   submission.FeedbackBy,
		"feedbackDate": submission.FeedbackDate,
	})
}

type batchStudents struct {
	Batch    batchModel.BatchModel   `json:"batch"`
	Course   courseModel.CourseModel `json:"course"`
	Students []userModel.UserModel   `json:"students"`
}

// GET /api/teacher/getTeacherCoursesAndStudents
func (ctl *AssignmentController) GetTeacherCoursesAndStudents(c *fiber.Ctx) error {
	teacherID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	var links []batchModel.TeacherBatchModel
	if err := ctl.DB.Where("teacher_id = ?", teacherID).Find(&links).Error; err != nil {
		ctl.Sugar.Errorw("teacher dashboard: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(links) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "You are not assigned to any batch")
	}

	result := make([]batchStudents, 0, len(links))
	for _, link := range links {
		var batch batchModel.BatchModel
		if err := ctl.DB.First(&batch, link.BatchID).Error; err != nil {
			continue
		}
		var course courseModel.CourseModel
		if err := ctl.DB.First(&course, batch.CourseID).Error; err != nil {
			continue
		}
		var students []userModel.UserModel
		if err := ctl.DB.
			Joins("JOIN student_batches ON student_batches.student_id = users.id").
			Where("student_batches.batch_id = ?", batch.ID).
			Find(&students).Error; err != nil {
			ctl.Sugar.Errorw("teacher dashboard: student list failed", "batch_id", batch.ID, "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		result = append(result, batchStudents{Batch: batch, Course: course, Students: students})
	}
	return helper.Success(c, "Courses and students fetched successfully", result)
}

func (ctl *AssignmentController) coursesForStudent(studentID uint) ([]courseModel.CourseModel, error) {
	var courses []courseModel.CourseModel
	err := ctl.DB.
		Joins("JOIN batches ON batches.course_id = courses.id").
		Joins("JOIN student_batches ON student_batches.batch_id = batches.id").
		Where("student_batches.student_id = ?", studentID).
		Find(&courses).Error
	return courses, err
}

// GET /api/student/getStudentCourses
func (ctl *AssignmentController) GetStudentCourses(c *fiber.Ctx) error {
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}
	courses, err := ctl.coursesForStudent(studentID)
	if err != nil {
		ctl.Sugar.Errorw("student courses failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(courses) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "You are not enrolled in any course")
	}
	return helper.Success(c, "Courses fetched successfully", courses)
}

// GET /api/student/getAssignedCourses/:studentId — self, or any staff role.
func (ctl *AssignmentController) GetAssignedCourses(c *fiber.Ctx) error {
	targetID, err := helper.ParamUint(c, "studentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	role := helper.Role(c)
	if !helper.IsStaff(role) {
		callerID, err := helper.UserID(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}
		if callerID != targetID {
			return helper.Error(c, fiber.StatusForbidden, "You can only view your own assigned courses")
		}
	}

	courses, err := ctl.coursesForStudent(targetID)
	if err != nil {
		ctl.Sugar.Errorw("assigned courses failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if len(courses) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No courses assigned to this student")
	}
	return helper.Success(c, "Courses fetched successfully", courses)
}
