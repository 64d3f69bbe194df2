package models

import "gorm.io/gorm"

// Users is an account able to own translation history.
type Users struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
}

func (Users) TableName() string {
	return "users"
}
