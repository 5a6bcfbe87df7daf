package dto

type TrainerSummaryDTO struct {
	ID             uint     `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	ProfilePicture string   `json:"profile_picture"`
	AverageRating  *float64 `json:"average_rating"`
}

// ServiceCardDTO is one result of the public service search.
type ServiceCardDTO struct {
	ID              uint    `json:"id"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	SessionCount    int     `json:"session_count"`
	Mode            string  `json:"mode"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Zone            string  `json:"zone"`
	Category        string  `json:"category"`

	TrainerID             uint    `json:"trainer_id"`
	TrainerFirstName      string  `json:"trainer_first_name"`
	TrainerLastName       string  `json:"trainer_last_name"`
	TrainerProfilePicture string  `json:"trainer_profile_picture"`
	HighlightImage        *string `json:"highlight_image"`
	TrainerAverageRating  float64 `json:"trainer_average_rating"`
}

type ServiceDetailDTO struct {
	ID              uint    `json:"id"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Zone            string  `json:"zone"`
	Mode            string  `json:"mode"`
	Address         string  `json:"address"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	SessionCount    int     `json:"session_count"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Status          string  `json:"status"`

	AvailableDays []string          `json:"available_days"`
	Images        []string          `json:"images"`
	Trainer       TrainerSummaryDTO `json:"trainer"`
}
