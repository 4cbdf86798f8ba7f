package model

import "time"

type QuizModel struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description"`
	CourseID    uint      `json:"course_id" gorm:"column:course_id;not null"`
	ModuleID    uint      `json:"module_id" gorm:"column:module_id;not null"`
	LessonID    uint      `json:"lesson_id" gorm:"column:lesson_id;not null;index"`
	BatchID     uint      `json:"batch_id" gorm:"column:batch_id;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

type QuestionModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	QuizID    uint      `json:"quiz_id" gorm:"column:quiz_id;not null;index"`
	Text      string    `json:"text" gorm:"column:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// AnswerModel never serializes is_correct through the student DTOs; the json
// tag here only feeds the staff view.
type AnswerModel struct {
	ID         uint      `json:"id" gorm:"column:id;primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"column:question_id;not null;index"`
	Text       string    `json:"text" gorm:"column:text;not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"column:is_correct;not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

// QuizResultModel holds the running score per (student, quiz); created lazily
// with score 0 on the first answer submission.
type QuizResultModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	StudentID uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_quiz_results_student_quiz"`
	QuizID    uint      `json:"quiz_id" gorm:"column:quiz_id;not null;uniqueIndex:uq_quiz_results_student_quiz"`
	Score     int       `json:"score" gorm:"column:score;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (QuizResultModel) TableName() string {
	return "quiz_results"
}
