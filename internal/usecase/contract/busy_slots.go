package contract

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
)

type TrainerBusySlots struct {
	repo domain.Repository
}

func NewTrainerBusySlots(repo domain.Repository) *TrainerBusySlots {
	return &TrainerBusySlots{repo: repo}
}

// Execute expands every scheduled accepted contract on the trainer's
// services into its weekly sessions.
func (uc *TrainerBusySlots) Execute(
	ctx context.Context,
	trainerID uint,
) ([]domain.BusySlot, error) {

	scheduled, err := uc.repo.ListScheduledForTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	out := []domain.BusySlot{}
	for _, s := range scheduled {
		slots, err := domain.ExpandBusySlots(s.StartDate, s.StartTime, s.DurationMinutes, s.SessionCount)
		if err != nil {
			return nil, err
		}
		out = append(out, slots...)
	}
	return out, nil
}
