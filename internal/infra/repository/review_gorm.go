package repository

import (
	"context"

	"gorm.io/gorm"

	contract "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/review"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) TrainerExists(ctx context.Context, trainerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", trainerID, models.RoleTrainer).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewGormRepository) HasHired(ctx context.Context, clientID, trainerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Joins("JOIN services ON services.id = contracts.service_id").
		Where(
			"contracts.client_id = ? AND services.trainer_id = ? AND contracts.status <> ?",
			clientID, trainerID, contract.StatusPending,
		).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewGormRepository) HasReviewed(ctx context.Context, clientID, trainerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("client_id = ? AND trainer_id = ?", clientID, trainerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewGormRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	err := r.db.WithContext(ctx).Create(rv).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("already_reviewed")
	}
	return err
}

func (r *ReviewGormRepository) reviewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select(`reviews.id, reviews.rating, reviews.comment, reviews.created_at,
            users.first_name AS author_first_name, users.last_name AS author_last_name,
            users.profile_picture AS author_profile_picture`).
		Joins("JOIN users ON users.id = reviews.client_id")
}

func (r *ReviewGormRepository) ListForTrainer(ctx context.Context, trainerID uint) ([]dto.ReviewDTO, error) {
	out := []dto.ReviewDTO{}
	err := r.reviewQuery(ctx).
		Where("reviews.trainer_id = ?", trainerID).
		Order("reviews.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *ReviewGormRepository) Top(ctx context.Context, limit int) ([]dto.ReviewDTO, error) {
	out := []dto.ReviewDTO{}
	err := r.reviewQuery(ctx).
		Order("reviews.rating DESC").
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type ratingCount struct {
	Rating int
	Total  int64
}

func (r *ReviewGormRepository) Distribution(ctx context.Context, trainerID uint) (map[int]int64, error) {
	var rows []ratingCount
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("rating, COUNT(*) AS total").
		Where("trainer_id = ?", trainerID).
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Rating] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
