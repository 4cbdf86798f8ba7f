package model

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LessonModel carries course_id redundantly next to module_id so student
// listings can filter on one table; the controllers re-derive the
// course -> module -> lesson chain on every reference anyway.
type LessonModel struct {
	ID        uint    `json:"id" gorm:"column:id;primaryKey"`
	ModuleID  uint    `json:"module_id" gorm:"column:module_id;not null;index"`
	CourseID  uint    `json:"course_id" gorm:"column:course_id;not null;index"`
	Title     string  `json:"title" gorm:"column:title;not null"`
	Content   string  `json:"content" gorm:"column:content"`
	VideoLink *string `json:"video_link,omitempty" gorm:"column:video_link"`
	PDFPath   *string `json:"pdf_path,omitempty" gorm:"column:pdf_path"`

	// Moderation state. Teacher-authored rows start pending; admin-authored
	// rows are approved implicitly. DeletionRequested distinguishes a teacher
	// delete request from an edit request while both sit in pending.
	Status            string `json:"status" gorm:"column:status;not null;default:approved"`
	DeletionRequested bool   `json:"deletion_requested" gorm:"column:deletion_requested;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

// LessonCompletionModel is the per-student gate that unlocks quiz viewing,
// quiz answering and assignment submission for a lesson.
type LessonCompletionModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	LessonID  uint      `json:"lesson_id" gorm:"column:lesson_id;not null;uniqueIndex:uq_lesson_completions_lesson_student"`
	StudentID uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_lesson_completions_lesson_student"`
	CourseID  uint      `json:"course_id" gorm:"column:course_id;not null"`
	ModuleID  uint      `json:"module_id" gorm:"column:module_id;not null"`
	Completed bool      `json:"completed" gorm:"column:completed;not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (LessonCompletionModel) TableName() string {
	return "lesson_completions"
}

type FeedbackModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	LessonID  uint      `json:"lesson_id" gorm:"column:lesson_id;not null;index"`
	StudentID uint      `json:"student_id" gorm:"column:student_id;not null;index"`
	Feedback  string    `json:"feedback" gorm:"column:feedback;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
