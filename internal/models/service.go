package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainerID uint `gorm:"not null;index" json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `json:"-"`

	ZoneID uint `gorm:"not null" json:"zone_id"`
	Zone   Zone `json:"-"`

	Description     string  `gorm:"type:text;not null" json:"description"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	SessionCount    int     `gorm:"not null" json:"session_count"`
	Price           float64 `gorm:"not null" json:"price"`
	Mode            string  `gorm:"size:20;not null" json:"mode"`
	Address         string  `gorm:"size:255" json:"address"`

	// HH:MM, [StartTime, EndTime)
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;not null;default:'not-published';index" json:"status"`

	Days   []ServiceDay   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Images []ServiceImage `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceDay struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ServiceID uint   `gorm:"not null;uniqueIndex:ux_service_day" json:"service_id"`
	Day       string `gorm:"size:10;not null;uniqueIndex:ux_service_day" json:"day"`
}

type ServiceImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ServiceID uint      `gorm:"not null;index" json:"service_id"`
	Name      string    `gorm:"size:255" json:"name"`
	Path      string    `gorm:"size:255;not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// View is one public impression of a service.
type View struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ServiceID uint      `gorm:"not null;index" json:"service_id"`
	CreatedAt time.Time `json:"created_at"`
}
