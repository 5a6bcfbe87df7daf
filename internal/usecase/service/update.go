package service

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type UpdateServiceInput struct {
	TrainerID    uint
	ServiceID    uint
	Service      domain.Input
	RemoveImages []string
	Images       []Upload
}

type UpdateService struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Dispatcher
}

func NewUpdateService(
	repo domain.Repository,
	store storage.Store,
	audit *audit.Dispatcher,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// Execute replaces the editable fields and days of a service, drops the
// listed images and adds the uploaded ones, all in one transaction.
func (uc *UpdateService) Execute(
	ctx context.Context,
	in UpdateServiceInput,
) (*models.Service, error) {

	data, err := domain.Normalize(in.Service)
	if err != nil {
		return nil, err
	}

	current, err := loadOwned(ctx, uc.repo, in.TrainerID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// only paths the service actually has count as removed
	owned := map[string]bool{}
	for _, img := range current.Images {
		owned[img.Path] = true
	}
	var remove []string
	for _, p := range in.RemoveImages {
		if owned[p] {
			remove = append(remove, p)
			delete(owned, p)
		}
	}

	if err := domain.CheckImageCap(len(current.Images), len(remove), len(in.Images)); err != nil {
		return nil, err
	}
	for _, img := range in.Images {
		if !domain.IsImageName(img.Name) {
			return nil, httperr.ErrBusiness("invalid_image")
		}
	}

	paths, err := saveAll(ctx, uc.store, storage.DirServiceImages, in.Images)
	if err != nil {
		return nil, err
	}

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		categoryID, err := tx.FindCategoryID(ctx, data.Category)
		if err != nil {
			return err
		}
		zoneID, err := tx.FindZoneID(ctx, data.Zone)
		if err != nil {
			return err
		}

		if err := tx.UpdateService(ctx, current.ID, map[string]any{
			"category_id":      categoryID,
			"zone_id":          zoneID,
			"description":      data.Description,
			"duration_minutes": data.DurationMinutes,
			"session_count":    data.SessionCount,
			"price":            data.Price,
			"mode":             data.Mode,
			"address":          data.Address,
			"start_time":       data.StartTime,
			"end_time":         data.EndTime,
		}); err != nil {
			return err
		}

		if err := tx.ReplaceDays(ctx, current.ID, data.Days); err != nil {
			return err
		}
		if _, err := tx.RemoveImages(ctx, current.ID, remove); err != nil {
			return err
		}
		return tx.AddImages(ctx, imageRows(current.ID, in.Images, paths))
	})
	if err != nil {
		removeAll(ctx, uc.store, paths)
		return nil, err
	}

	removeAll(ctx, uc.store, remove)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TrainerID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &current.ID,
		Metadata: map[string]any{"removed_images": len(remove), "added_images": len(paths)},
	})

	return uc.repo.GetService(ctx, current.ID)
}

func loadOwned(ctx context.Context, repo domain.Repository, trainerID, serviceID uint) (*models.Service, error) {
	svc, err := repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.TrainerID != trainerID {
		return nil, httperr.ErrBusiness("not_service_owner")
	}
	return svc, nil
}
