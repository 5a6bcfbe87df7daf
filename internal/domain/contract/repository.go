package contract

import (
	"context"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// Scheduled is an accepted contract with its slot and the session shape of
// its service.
type Scheduled struct {
	ContractID      uint
	ServiceID       uint
	StartDate       time.Time
	StartTime       string
	DurationMinutes int
	SessionCount    int
}

type Repository interface {
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetPublishedService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	ServiceDays(
		ctx context.Context,
		serviceID uint,
	) ([]string, error)

	// -------- Contract --------
	GetContract(
		ctx context.Context,
		id uint,
	) (*models.Contract, error)

	// LockContract reads the row FOR UPDATE.
	LockContract(
		ctx context.Context,
		id uint,
	) (*models.Contract, error)

	CreateContract(
		ctx context.Context,
		c *models.Contract,
	) error

	UpdateContract(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) error

	HasPendingContract(
		ctx context.Context,
		clientID uint,
		serviceID uint,
	) (bool, error)

	// HasSlotConflict looks for another accepted contract of the service on
	// the same weekday and start time, locking what it finds.
	HasSlotConflict(
		ctx context.Context,
		serviceID uint,
		excludeContractID uint,
		weekday string,
		startTime string,
	) (bool, error)

	// -------- Listing --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]dto.ContractListDTO, error)

	ListForTrainer(
		ctx context.Context,
		trainerID uint,
	) ([]dto.ContractListDTO, error)

	ListScheduledForTrainer(
		ctx context.Context,
		trainerID uint,
	) ([]Scheduled, error)

	// -------- Files --------
	ListFiles(
		ctx context.Context,
		contractID uint,
	) ([]models.ContractFile, error)

	CreateFile(
		ctx context.Context,
		f *models.ContractFile,
	) error
}
