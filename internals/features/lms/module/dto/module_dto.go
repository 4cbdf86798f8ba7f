package dto

type CreateModuleRequest struct {
	CourseID uint   `json:"courseId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
}

type UpdateModuleRequest struct {
	CourseID uint   `json:"courseId" validate:"required"`
	ModuleID uint   `json:"moduleId" validate:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
