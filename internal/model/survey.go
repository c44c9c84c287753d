package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Author    User           `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	IsActive  bool           `json:"is_active" gorm:"not null;default:true;index"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
