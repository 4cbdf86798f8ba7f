package model

import "time"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

func ValidRole(role string) bool {
	switch role {
	case RoleSuperadmin, RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type UserModel struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Email       string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"column:password;not null"`
	Role        string    `json:"role" gorm:"column:role;not null;default:student"`
	Approved    bool      `json:"approved" gorm:"column:approved;not null;default:false"`
	PhoneNumber *string   `json:"phone_number,omitempty" gorm:"column:phone_number"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
