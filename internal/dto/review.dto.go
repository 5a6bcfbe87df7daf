package dto

import "time"

type ReviewDTO struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	AuthorFirstName      string `json:"author_first_name"`
	AuthorLastName       string `json:"author_last_name"`
	AuthorProfilePicture string `json:"author_profile_picture"`
}
