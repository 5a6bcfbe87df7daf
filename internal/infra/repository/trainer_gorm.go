package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	contract "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type TrainerGormRepository struct {
	db *gorm.DB
}

func NewTrainerGormRepository(db *gorm.DB) *TrainerGormRepository {
	return &TrainerGormRepository{db: db}
}

func (r *TrainerGormRepository) GetTrainer(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleTrainer).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("trainer_not_found")
		}
		return nil, err
	}
	return &u, nil
}

type serviceCount struct {
	ServiceID uint
	Total     int64
}

func (r *TrainerGormRepository) ViewCounts(ctx context.Context, serviceIDs []uint) (map[uint]int64, error) {
	return countByService(r.db.WithContext(ctx).Model(&models.View{}), serviceIDs)
}

func (r *TrainerGormRepository) AcceptedCounts(ctx context.Context, serviceIDs []uint) (map[uint]int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("status = ?", contract.StatusAccepted)
	return countByService(q, serviceIDs)
}

func countByService(q *gorm.DB, serviceIDs []uint) (map[uint]int64, error) {
	out := map[uint]int64{}
	if len(serviceIDs) == 0 {
		return out, nil
	}

	var rows []serviceCount
	if err := q.
		Select("service_id, COUNT(*) AS total").
		Where("service_id IN ?", serviceIDs).
		Group("service_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ServiceID] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*TrainerGormRepository)(nil)
