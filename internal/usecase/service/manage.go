package service

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

// ======================================================
// STATUS
// ======================================================

type SetServiceStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetServiceStatus(repo domain.Repository, audit *audit.Dispatcher) *SetServiceStatus {
	return &SetServiceStatus{repo: repo, audit: audit}
}

func (uc *SetServiceStatus) Execute(
	ctx context.Context,
	trainerID, serviceID uint,
	status string,
) (*models.Service, error) {

	if !domain.ValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	svc, err := loadOwned(ctx, uc.repo, trainerID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, svc.ID, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	svc.Status = status

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainerID,
		Action:   "service_status_changed",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"status": status},
	})

	return svc, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteService struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, store storage.Store, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, store: store, audit: audit}
}

func (uc *DeleteService) Execute(ctx context.Context, trainerID, serviceID uint) error {
	svc, err := loadOwned(ctx, uc.repo, trainerID, serviceID)
	if err != nil {
		return err
	}

	if err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		return tx.DeleteService(ctx, svc.ID)
	}); err != nil {
		return err
	}

	paths := make([]string, 0, len(svc.Images))
	for _, img := range svc.Images {
		paths = append(paths, img.Path)
	}
	removeAll(ctx, uc.store, paths)

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainerID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
	})
	return nil
}
