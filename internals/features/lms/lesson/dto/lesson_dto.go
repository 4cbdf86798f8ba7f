package dto

type CreateLessonRequest struct {
	CourseID  uint   `json:"courseId" validate:"required"`
	ModuleID  uint   `json:"moduleId" validate:"required"`
	Title     string `json:"title" validate:"required,min=3,max=120"`
	Content   string `json:"content"`
	VideoLink string `json:"videoLink" validate:"omitempty,url"`
}

type UpdateLessonRequest struct {
	CourseID  uint   `json:"courseId" validate:"required"`
	ModuleID  uint   `json:"moduleId" validate:"required"`
	LessonID  uint   `json:"lessonId" validate:"required"`
	Title     string `json:"title" validate:"omitempty,min=3,max=120"`
	Content   string `json:"content"`
	VideoLink string `json:"videoLink" validate:"omitempty,url"`
}

type RequestDeleteLessonRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
	ModuleID uint `json:"moduleId" validate:"required"`
	LessonID uint `json:"lessonId" validate:"required"`
}

type CompleteLessonRequest struct {
	LessonID uint `json:"lessonId" validate:"required"`
}

type SubmitFeedbackRequest struct {
	LessonID uint   `json:"lessonId" validate:"required"`
	Feedback string `json:"feedback" validate:"required,min=3"`
}
