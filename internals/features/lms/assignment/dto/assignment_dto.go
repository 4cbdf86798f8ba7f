package dto

import "time"

type CreateAssignmentRequest struct {
	CourseID       uint      `json:"courseId" validate:"required"`
	ModuleID       uint      `json:"moduleId" validate:"required"`
	LessonID       uint      `json:"lessonId" validate:"required"`
	BatchID        uint      `json:"batchId" validate:"required"`
	Title          string    `json:"title" validate:"required,min=3,max=120"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"dueDate"`
	SubmissionLink string    `json:"submissionLink" validate:"required,url"`
}

type UpdateAssignmentRequest struct {
	Title          string     `json:"title" validate:"omitempty,min=3,max=120"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"dueDate"`
	SubmissionLink string     `json:"submissionLink" validate:"omitempty,url"`
}

type PostFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,min=3"`
}
