package dto

import "time"

type CreateBatchRequest struct {
	CourseID  uint      `json:"courseId" validate:"required"`
	BatchName string    `json:"batchName" validate:"required,min=2,max=120"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type UpdateBatchRequest struct {
	CourseID  uint       `json:"courseId" validate:"required"`
	BatchID   uint       `json:"batchId" validate:"required"`
	BatchName string     `json:"batchName" validate:"omitempty,min=2,max=120"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type AssignUserRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
	BatchID  uint `json:"batchId" validate:"required"`
	UserID   uint `json:"userId" validate:"required"`
}

type RemoveUserRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
	BatchID  uint `json:"batchId" validate:"required"`
	UserID   uint `json:"userId" validate:"required"`
}

type PostLiveLinkRequest struct {
	LiveLink      string    `json:"liveLink" validate:"required,url"`
	LiveStartTime time.Time `json:"liveStartTime" validate:"required"`
}
