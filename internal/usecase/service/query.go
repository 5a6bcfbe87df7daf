package service

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// SEARCH
// ======================================================

type SearchServices struct {
	repo domain.Repository
}

func NewSearchServices(repo domain.Repository) *SearchServices {
	return &SearchServices{repo: repo}
}

func (uc *SearchServices) Execute(ctx context.Context, f domain.SearchFilter) ([]dto.ServiceCardDTO, error) {
	out, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []dto.ServiceCardDTO{}
	}
	return out, nil
}

// ======================================================
// DETAIL
// ======================================================

type GetServiceDetail struct {
	repo domain.Repository
}

func NewGetServiceDetail(repo domain.Repository) *GetServiceDetail {
	return &GetServiceDetail{repo: repo}
}

// Execute returns a published service and counts one view for it.
func (uc *GetServiceDetail) Execute(ctx context.Context, serviceID uint) (*dto.ServiceDetailDTO, error) {
	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.Status != domain.StatusPublished {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if err := uc.repo.RecordViews(ctx, svc.ID); err != nil {
		return nil, err
	}

	rating, err := uc.repo.TrainerRating(ctx, svc.TrainerID)
	if err != nil {
		return nil, err
	}

	out := ToDetail(svc)
	out.Trainer = dto.TrainerSummaryDTO{
		ID:             svc.Trainer.ID,
		FirstName:      svc.Trainer.FirstName,
		LastName:       svc.Trainer.LastName,
		ProfilePicture: svc.Trainer.ProfilePicture,
		AverageRating:  rating,
	}
	return &out, nil
}

// ToDetail flattens a service loaded with its associations.
func ToDetail(svc *models.Service) dto.ServiceDetailDTO {
	days := make([]string, 0, len(svc.Days))
	for _, d := range svc.Days {
		days = append(days, d.Day)
	}
	images := make([]string, 0, len(svc.Images))
	for _, img := range svc.Images {
		images = append(images, img.Path)
	}

	return dto.ServiceDetailDTO{
		ID:              svc.ID,
		Description:     svc.Description,
		Category:        svc.Category.Name,
		Zone:            svc.Zone.Name,
		Mode:            svc.Mode,
		Address:         svc.Address,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		SessionCount:    svc.SessionCount,
		StartTime:       svc.StartTime,
		EndTime:         svc.EndTime,
		Status:          svc.Status,
		AvailableDays:   days,
		Images:          images,
		Trainer: dto.TrainerSummaryDTO{
			ID:             svc.Trainer.ID,
			FirstName:      svc.Trainer.FirstName,
			LastName:       svc.Trainer.LastName,
			ProfilePicture: svc.Trainer.ProfilePicture,
		},
	}
}

// ======================================================
// TRAINER SERVICES
// ======================================================

type ListTrainerServices struct {
	repo domain.Repository
}

func NewListTrainerServices(repo domain.Repository) *ListTrainerServices {
	return &ListTrainerServices{repo: repo}
}

// Execute lists every service of the trainer; only the owner may call it.
func (uc *ListTrainerServices) Execute(ctx context.Context, callerID, trainerID uint) ([]dto.ServiceDetailDTO, error) {
	if callerID != trainerID {
		return nil, httperr.ErrBusiness("not_trainer_owner")
	}

	services, err := uc.repo.ListByTrainer(ctx, trainerID, false)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceDetailDTO, 0, len(services))
	for i := range services {
		out = append(out, ToDetail(&services[i]))
	}
	return out, nil
}
