package model

type AnswerOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;uniqueIndex:idx_options_question_order"`
	Text       string `json:"text" gorm:"size:500;not null"`
	Order      int    `json:"order" gorm:"column:display_order;not null;uniqueIndex:idx_options_question_order"`
}
