package review

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5

	DefaultTopLimit = 5
)

func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

type Repository interface {
	TrainerExists(ctx context.Context, trainerID uint) (bool, error)

	// HasHired reports whether the client holds a contract past pending on
	// any service of the trainer.
	HasHired(ctx context.Context, clientID, trainerID uint) (bool, error)

	HasReviewed(ctx context.Context, clientID, trainerID uint) (bool, error)

	// CreateReview maps the (client, trainer) unique index to already_reviewed.
	CreateReview(ctx context.Context, r *models.Review) error

	ListForTrainer(ctx context.Context, trainerID uint) ([]dto.ReviewDTO, error)

	Top(ctx context.Context, limit int) ([]dto.ReviewDTO, error)

	// Distribution counts reviews per rating value.
	Distribution(ctx context.Context, trainerID uint) (map[int]int64, error)
}
