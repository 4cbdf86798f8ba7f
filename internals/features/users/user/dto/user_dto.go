package dto

type ApproveUserRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Role string `json:"role" validate:"required"`
}

type CreateUserRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Role        string  `json:"role" validate:"required,oneof=admin teacher student"`
	Approved    bool    `json:"approved"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Password    string  `json:"password" validate:"omitempty,min=6"`
	Role        string  `json:"role" validate:"omitempty,oneof=admin teacher student"`
	Approved    *bool   `json:"approved"`
	PhoneNumber *string `json:"phone_number"`
}

// BulkRowResult is the per-row outcome of an Excel import; one bad row never
// aborts the rest of the sheet.
type BulkRowResult struct {
	Email  string `json:"email"`
	Status string `json:"status"` // success | skipped | failed
	Reason string `json:"reason,omitempty"`
}
