package models

import "time"

const (
	RoleClient  = "client"
	RoleTrainer = "trainer"
)

const DefaultProfilePicture = "/uploads/profile-pictures/default-profile.png"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;index" json:"role"`

	Description    string `gorm:"type:text" json:"description"`
	ProfilePicture string `gorm:"size:255" json:"profile_picture"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
