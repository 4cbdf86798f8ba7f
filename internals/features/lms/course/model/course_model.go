package model

import "time"

type CourseModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	Name        string     `json:"name" gorm:"column:name;not null"`
	Description string     `json:"description" gorm:"column:description"`
	StartDate   *time.Time `json:"start_date,omitempty" gorm:"column:start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" gorm:"column:end_date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
