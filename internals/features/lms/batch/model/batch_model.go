package model

import "time"

type BatchModel struct {
	ID            uint       `json:"id" gorm:"column:id;primaryKey"`
	CourseID      uint       `json:"course_id" gorm:"column:course_id;not null;index"`
	BatchName     string     `json:"batch_name" gorm:"column:batch_name;not null"`
	StartDate     time.Time  `json:"start_date" gorm:"column:start_date"`
	EndDate       time.Time  `json:"end_date" gorm:"column:end_date"`
	LiveLink      *string    `json:"live_link,omitempty" gorm:"column:live_link"`
	LiveStartTime *time.Time `json:"live_start_time,omitempty" gorm:"column:live_start_time;index"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (BatchModel) TableName() string {
	return "batches"
}

// StudentBatchModel links a student to their batch. The unique index on
// student_id alone enforces the system-wide single-batch rule at the storage
// layer; the controller pre-check only supplies the friendly message.
type StudentBatchModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	StudentID uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_student_batches_student"`
	BatchID   uint      `json:"batch_id" gorm:"column:batch_id;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (StudentBatchModel) TableName() string {
	return "student_batches"
}

// TeacherBatchModel links a teacher to a batch. Teachers may serve several
// batches, but each (teacher, batch) pair exists at most once.
type TeacherBatchModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	TeacherID uint      `json:"teacher_id" gorm:"column:teacher_id;not null;uniqueIndex:uq_teacher_batches_teacher_batch"`
	BatchID   uint      `json:"batch_id" gorm:"column:batch_id;not null;uniqueIndex:uq_teacher_batches_teacher_batch"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TeacherBatchModel) TableName() string {
	return "teacher_batches"
}

type NotificationModel struct {
	ID            uint      `json:"id" gorm:"column:id;primaryKey"`
	UserID        uint      `json:"user_id" gorm:"column:user_id;not null;index"`
	BatchID       uint      `json:"batch_id" gorm:"column:batch_id;not null;index"`
	Message       string    `json:"message" gorm:"column:message;not null"`
	LiveStartTime time.Time `json:"live_start_time" gorm:"column:live_start_time"`
	IsRead        bool      `json:"is_read" gorm:"column:is_read;not null;default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
