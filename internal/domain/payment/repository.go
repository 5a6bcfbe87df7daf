package payment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ErrAlreadyRecorded reports a provider payment id that was stored before.
var ErrAlreadyRecorded = errors.New("payment already recorded")

type Repository interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	IsRecorded(ctx context.Context, providerPaymentID string) (bool, error)
	// RecordPayment returns ErrAlreadyRecorded on a duplicate provider id.
	RecordPayment(ctx context.Context, p *models.Payment) error

	// PendingContract is nil when the client has no pending contract on
	// the service.
	PendingContract(ctx context.Context, clientID, serviceID uint) (*models.Contract, error)
	CreateContract(ctx context.Context, c *models.Contract) error
}
