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
// INPUT
// ======================================================

type CreateServiceInput struct {
	TrainerID uint
	Service   domain.Input
	Images    []Upload
}

// ======================================================
// USE CASE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Dispatcher
}

func NewCreateService(
	repo domain.Repository,
	store storage.Store,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateService) Execute(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	data, err := domain.Normalize(in.Service)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckImageCap(0, 0, len(in.Images)); err != nil {
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

	svc := &models.Service{
		TrainerID:       in.TrainerID,
		Description:     data.Description,
		DurationMinutes: data.DurationMinutes,
		SessionCount:    data.SessionCount,
		Price:           data.Price,
		Mode:            data.Mode,
		Address:         data.Address,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Status:          domain.StatusNotPublished,
	}

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		if svc.CategoryID, err = tx.FindCategoryID(ctx, data.Category); err != nil {
			return err
		}
		if svc.ZoneID, err = tx.FindZoneID(ctx, data.Zone); err != nil {
			return err
		}

		if err := tx.CreateService(ctx, svc); err != nil {
			return err
		}
		if err := tx.ReplaceDays(ctx, svc.ID, data.Days); err != nil {
			return err
		}
		return tx.AddImages(ctx, imageRows(svc.ID, in.Images, paths))
	})
	if err != nil {
		removeAll(ctx, uc.store, paths)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TrainerID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return uc.repo.GetService(ctx, svc.ID)
}

func imageRows(serviceID uint, uploads []Upload, paths []string) []models.ServiceImage {
	rows := make([]models.ServiceImage, 0, len(paths))
	for i, p := range paths {
		rows = append(rows, models.ServiceImage{
			ServiceID: serviceID,
			Name:      uploads[i].Name,
			Path:      p,
		})
	}
	return rows
}
