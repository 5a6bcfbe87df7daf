package models

import "time"

// Payment records a processed payment notification from the provider.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ProviderPaymentID string    `gorm:"size:64;uniqueIndex;not null" json:"provider_payment_id"`
	ClientID          uint      `gorm:"not null;index" json:"client_id"`
	ServiceID         uint      `gorm:"not null;index" json:"service_id"`
	ContractID        *uint     `json:"contract_id"`
	Status            string    `gorm:"size:30;not null" json:"status"`
	Amount            float64   `json:"amount"`
	CreatedAt         time.Time `json:"created_at"`
}
