package service

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Catalog --------
	FindCategoryID(ctx context.Context, name string) (uint, error)
	FindZoneID(ctx context.Context, name string) (uint, error)

	// -------- Service --------
	// GetService preloads days, images, category, zone and trainer.
	GetService(ctx context.Context, id uint) (*models.Service, error)

	CreateService(ctx context.Context, s *models.Service) error

	UpdateService(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) error

	DeleteService(ctx context.Context, id uint) error

	ListByTrainer(
		ctx context.Context,
		trainerID uint,
		publishedOnly bool,
	) ([]models.Service, error)

	// -------- Days / Images --------
	ReplaceDays(ctx context.Context, serviceID uint, days []string) error

	AddImages(ctx context.Context, images []models.ServiceImage) error

	// RemoveImages deletes the given paths of the service and reports how
	// many rows went away.
	RemoveImages(
		ctx context.Context,
		serviceID uint,
		paths []string,
	) (int64, error)

	// -------- Search / Views --------
	Search(ctx context.Context, f SearchFilter) ([]dto.ServiceCardDTO, error)

	RecordViews(ctx context.Context, serviceIDs ...uint) error

	// TrainerRating is nil when the trainer has no reviews.
	TrainerRating(ctx context.Context, trainerID uint) (*float64, error)
}
