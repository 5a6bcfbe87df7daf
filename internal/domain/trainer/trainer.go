package trainer

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ConversionRate is accepted contracts over views as a percentage with two
// decimals, "0.00%" when the service was never viewed.
func ConversionRate(views, contracts int64) string {
	if views <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(contracts)/float64(views)*100)
}

type Repository interface {
	// GetTrainer fails with trainer_not_found for missing ids and for
	// users that are not trainers.
	GetTrainer(ctx context.Context, id uint) (*models.User, error)

	// Counts keyed by service id. Services without rows are absent.
	ViewCounts(ctx context.Context, serviceIDs []uint) (map[uint]int64, error)
	AcceptedCounts(ctx context.Context, serviceIDs []uint) (map[uint]int64, error)
}
