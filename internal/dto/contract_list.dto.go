package dto

import "time"

// ContractListDTO is one row of GET /contracts. Clients see the trainer's
// name, trainers see the client's.
type ContractListDTO struct {
	ID          uint       `json:"id"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	StartDate   *time.Time `json:"start_date"`
	Weekday     *string    `json:"weekday"`
	StartTime   *string    `json:"start_time"`

	ServiceID          uint    `json:"service_id"`
	ServiceDescription string  `json:"service_description"`
	Price              float64 `json:"price"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name,omitempty"`
	TrainerID   uint   `json:"trainer_id"`
	TrainerName string `json:"trainer_name,omitempty"`
}
