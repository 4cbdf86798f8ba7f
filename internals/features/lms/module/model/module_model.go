package model

import "time"

type ModuleModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"column:course_id;not null;index"`
	Title     string    `json:"title" gorm:"column:title;not null"`
	Content   string    `json:"content" gorm:"column:content"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (ModuleModel) TableName() string {
	return "modules"
}
