package model

import "time"

type AssignmentModel struct {
	ID             uint      `json:"id" gorm:"column:id;primaryKey"`
	CourseID       uint      `json:"course_id" gorm:"column:course_id;not null;index"`
	ModuleID       uint      `json:"module_id" gorm:"column:module_id;not null"`
	LessonID       uint      `json:"lesson_id" gorm:"column:lesson_id;not null;index"`
	BatchID        uint      `json:"batch_id" gorm:"column:batch_id;not null;index"`
	Title          string    `json:"title" gorm:"column:title;not null"`
	Description    string    `json:"description" gorm:"column:description"`
	DueDate        time.Time `json:"due_date" gorm:"column:due_date"`
	SubmissionLink string    `json:"submission_link" gorm:"column:submission_link;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// AssignmentSubmissionModel is one student's submission. Resubmission creates
// another row; grading later fills the feedback columns in place.
type AssignmentSubmissionModel struct {
	ID           uint       `json:"id" gorm:"column:id;primaryKey"`
	AssignmentID uint       `json:"assignment_id" gorm:"column:assignment_id;not null;index"`
	StudentID    uint       `json:"student_id" gorm:"column:student_id;not null;index"`
	Content      *string    `json:"content,omitempty" gorm:"column:content"`
	FileLink     *string    `json:"file_link,omitempty" gorm:"column:file_link"`
	Feedback     *string    `json:"feedback,omitempty" gorm:"column:feedback"`
	FeedbackBy   *uint      `json:"feedback_by,omitempty" gorm:"column:feedback_by"`
	FeedbackDate *time.Time `json:"feedback_date,omitempty" gorm:"column:feedback_date"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (AssignmentSubmissionModel) TableName() string {
	return "assignment_submissions"
}
