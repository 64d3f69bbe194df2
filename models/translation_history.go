package models

import "gorm.io/gorm"

// TranslationHistory is one completed translation owned by a user.
// Everything except IsFavorite is fixed at creation; CreatedAt (from
// gorm.Model) is the sort key for listing.
type TranslationHistory struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"not null;index"`
	User           *Users `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SourceText     string `json:"source_text" gorm:"type:text;not null"`
	TranslatedText string `json:"translated_text" gorm:"type:text;not null"`
	SourceLang     string `json:"source_lang" gorm:"size:10;not null"`
	TargetLang     string `json:"target_lang" gorm:"size:10;not null"`
	IsFavorite     bool   `json:"is_favorite" gorm:"not null;default:false"`
}

func (TranslationHistory) TableName() string {
	return "translation_histories"
}
