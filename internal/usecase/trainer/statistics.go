package trainer

import (
	"context"

	reviewdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/review"
	servicedomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Conversion struct {
	ServiceID      uint   `json:"service_id"`
	Views          int64  `json:"views"`
	Contracts      int64  `json:"contracts"`
	ConversionRate string `json:"conversion_rate"`
}

type Statistics struct {
	Conversions        []Conversion  `json:"conversions"`
	AverageRating      *float64      `json:"average_rating"`
	TotalReviews       int64         `json:"total_reviews"`
	RatingDistribution map[int]int64 `json:"rating_distribution"`
}

type GetStatistics struct {
	trainers domain.Repository
	services servicedomain.Repository
	reviews  reviewdomain.Repository
}

func NewGetStatistics(
	trainers domain.Repository,
	services servicedomain.Repository,
	reviews reviewdomain.Repository,
) *GetStatistics {
	return &GetStatistics{trainers: trainers, services: services, reviews: reviews}
}

// Execute is restricted to the trainer themself.
func (uc *GetStatistics) Execute(ctx context.Context, trainerID uint, viewer Viewer) (*Statistics, error) {
	t, err := uc.trainers.GetTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if viewer.ID != t.ID || viewer.Role != models.RoleTrainer {
		return nil, httperr.ErrBusiness("not_trainer_owner")
	}

	services, err := uc.services.ListByTrainer(ctx, t.ID, false)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}

	rating, err := uc.services.TrainerRating(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	return uc.build(ctx, t.ID, ids, rating)
}

func (uc *GetStatistics) build(
	ctx context.Context,
	trainerID uint,
	serviceIDs []uint,
	rating *float64,
) (*Statistics, error) {

	views, err := uc.trainers.ViewCounts(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	accepted, err := uc.trainers.AcceptedCounts(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	dist, err := uc.reviews.Distribution(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	var totalReviews int64
	for _, n := range dist {
		totalReviews += n
	}

	conversions := make([]Conversion, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		conversions = append(conversions, Conversion{
			ServiceID:      id,
			Views:          views[id],
			Contracts:      accepted[id],
			ConversionRate: domain.ConversionRate(views[id], accepted[id]),
		})
	}

	return &Statistics{
		Conversions:        conversions,
		AverageRating:      rating,
		TotalReviews:       totalReviews,
		RatingDistribution: dist,
	}, nil
}
