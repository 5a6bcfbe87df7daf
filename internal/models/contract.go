package models

import "time"

type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`

	// Filled when the client schedules the weekly session.
	StartDate *time.Time `gorm:"type:date" json:"start_date"`
	Weekday   *string    `gorm:"size:10" json:"weekday"`
	StartTime *string    `gorm:"size:5" json:"start_time"`

	UpdatedAt time.Time `json:"updated_at"`
}

type ContractFile struct {
	ID         uint      `gorm:"primaryKey" json:"file_id"`
	ContractID uint      `gorm:"not null;index" json:"contract_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Path       string    `gorm:"size:255;not null" json:"path"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
