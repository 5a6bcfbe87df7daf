package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID  uint `gorm:"not null;uniqueIndex:ux_review_client_trainer" json:"client_id"`
	Client    User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	TrainerID uint `gorm:"not null;uniqueIndex:ux_review_client_trainer;index" json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
