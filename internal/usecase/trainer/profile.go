package trainer

import (
	"context"

	contractdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	reviewdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/review"
	servicedomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	contractuc "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/contract"
	serviceuc "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/service"
)

type Card struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Description    string `json:"description"`
	ProfilePicture string `json:"profile_picture"`
}

type Profile struct {
	Trainer       Card                      `json:"trainer"`
	Services      []dto.ServiceDetailDTO    `json:"services"`
	Reviews       []dto.ReviewDTO           `json:"reviews"`
	AverageRating *float64                  `json:"average_rating"`
	BusySlots     []contractdomain.BusySlot `json:"busy_slots"`
	Statistics    *Statistics               `json:"statistics,omitempty"`
}

// Viewer is the optional caller of a public profile.
type Viewer struct {
	ID   uint
	Role string
}

type GetProfile struct {
	trainers domain.Repository
	services servicedomain.Repository
	reviews  reviewdomain.Repository
	busy     *contractuc.TrainerBusySlots
	stats    *GetStatistics
}

func NewGetProfile(
	trainers domain.Repository,
	services servicedomain.Repository,
	reviews reviewdomain.Repository,
	contracts contractdomain.Repository,
) *GetProfile {
	return &GetProfile{
		trainers: trainers,
		services: services,
		reviews:  reviews,
		busy:     contractuc.NewTrainerBusySlots(contracts),
		stats:    NewGetStatistics(trainers, services, reviews),
	}
}

// Execute builds the public trainer page. The owner sees every service
// plus statistics; anyone else sees published services and counts as one
// view on each of them.
func (uc *GetProfile) Execute(ctx context.Context, trainerID uint, viewer *Viewer) (*Profile, error) {
	t, err := uc.trainers.GetTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	isOwner := viewer != nil && viewer.ID == t.ID && viewer.Role == models.RoleTrainer

	services, err := uc.services.ListByTrainer(ctx, t.ID, !isOwner)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviews.ListForTrainer(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	rating, err := uc.services.TrainerRating(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	busy, err := uc.busy.Execute(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	out := &Profile{
		Trainer: Card{
			ID:             t.ID,
			FirstName:      t.FirstName,
			LastName:       t.LastName,
			Description:    t.Description,
			ProfilePicture: t.ProfilePicture,
		},
		Services:      make([]dto.ServiceDetailDTO, 0, len(services)),
		Reviews:       reviews,
		AverageRating: rating,
		BusySlots:     busy,
	}
	if out.Reviews == nil {
		out.Reviews = []dto.ReviewDTO{}
	}

	ids := make([]uint, 0, len(services))
	for i := range services {
		out.Services = append(out.Services, serviceuc.ToDetail(&services[i]))
		ids = append(ids, services[i].ID)
	}

	if isOwner {
		out.Statistics, err = uc.stats.build(ctx, t.ID, ids, rating)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	if err := uc.services.RecordViews(ctx, ids...); err != nil {
		return nil, err
	}
	return out, nil
}
