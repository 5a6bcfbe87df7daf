package contract

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateContractInput struct {
	ContractID uint
	Actor      domain.Actor

	Status *string

	// Both or neither. The weekday is derived from StartDate.
	StartDate *string
	StartTime *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateContract struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateContract(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateContract {
	return &UpdateContract{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateContract) Execute(
	ctx context.Context,
	in UpdateContractInput,
) (*models.Contract, error) {

	// --------------------------------------------------
	// 1. Shape of the request
	// --------------------------------------------------
	if in.Status != nil {
		if _, err := domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	slot, err := domain.ParseSlot(in.StartDate, in.StartTime)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	// --------------------------------------------------
	// 2. Status and schedule, one transaction
	// --------------------------------------------------
	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		c, err := tx.LockContract(ctx, in.ContractID)
		if err != nil {
			return err
		}

		svc, err := tx.GetService(ctx, c.ServiceID)
		if err != nil {
			return err
		}

		parties := domain.Parties{ClientID: c.ClientID, TrainerID: svc.TrainerID}
		status := domain.Status(c.Status)

		if in.Status != nil {
			next, err := domain.CanTransition(*in.Status, in.Actor, parties)
			if err != nil {
				return err
			}
			fields["status"] = string(next)
			status = next
		}

		if slot != nil {
			days, err := tx.ServiceDays(ctx, svc.ID)
			if err != nil {
				return err
			}

			window := domain.ServiceWindow{
				Days:      days,
				StartTime: svc.StartTime,
				EndTime:   svc.EndTime,
			}
			if err := domain.CheckSchedule(status, in.Actor, parties, window, *slot); err != nil {
				return err
			}

			taken, err := tx.HasSlotConflict(ctx, svc.ID, c.ID, slot.Weekday, slot.StartTime)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrSlotTaken()
			}

			fields["start_date"] = slot.Date
			fields["weekday"] = slot.Weekday
			fields["start_time"] = slot.StartTime
		}

		if len(fields) == 0 {
			return nil
		}

		return tx.UpdateContract(ctx, c.ID, fields)
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetContract(ctx, in.ContractID)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.Actor.ID,
			Action:   "contract_updated",
			Entity:   "contract",
			EntityID: &updated.ID,
			Metadata: fields,
		})
	}

	return updated, nil
}
