package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ServiceGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ServiceGormRepository) FindCategoryID(ctx context.Context, name string) (uint, error) {
	var cat models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusiness("category_not_found")
		}
		return 0, err
	}
	return cat.ID, nil
}

func (r *ServiceGormRepository) FindZoneID(ctx context.Context, name string) (uint, error) {
	var zone models.Zone
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusiness("zone_not_found")
		}
		return 0, err
	}
	return zone.ID, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ServiceGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Days").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Category").
		Preload("Zone").
		Preload("Trainer").
		First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *ServiceGormRepository) UpdateService(
	ctx context.Context,
	id uint,
	fields map[string]any,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *ServiceGormRepository) DeleteService(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("service_id = ?", id).Delete(&models.ServiceDay{}).Error; err != nil {
		return err
	}
	if err := db.Where("service_id = ?", id).Delete(&models.ServiceImage{}).Error; err != nil {
		return err
	}
	if err := db.Where("service_id = ?", id).Delete(&models.View{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Service{}, id).Error
}

func (r *ServiceGormRepository) ListByTrainer(
	ctx context.Context,
	trainerID uint,
	publishedOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Preload("Days").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Category").
		Preload("Zone").
		Preload("Trainer").
		Where("trainer_id = ?", trainerID)

	if publishedOnly {
		q = q.Where("status = ?", domain.StatusPublished)
	}

	var out []models.Service
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// --------------------------------------------------
// Days / Images
// --------------------------------------------------

func (r *ServiceGormRepository) ReplaceDays(ctx context.Context, serviceID uint, days []string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("service_id = ?", serviceID).Delete(&models.ServiceDay{}).Error; err != nil {
		return err
	}

	rows := make([]models.ServiceDay, 0, len(days))
	for _, d := range days {
		rows = append(rows, models.ServiceDay{ServiceID: serviceID, Day: d})
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func (r *ServiceGormRepository) AddImages(ctx context.Context, images []models.ServiceImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *ServiceGormRepository) RemoveImages(
	ctx context.Context,
	serviceID uint,
	paths []string,
) (int64, error) {

	if len(paths) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("service_id = ? AND path IN ?", serviceID, paths).
		Delete(&models.ServiceImage{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Search / Views
// --------------------------------------------------

const trainerRatingExpr = `COALESCE((
    SELECT AVG(reviews.rating) FROM reviews
    WHERE reviews.trainer_id = services.trainer_id
), 0)`

func (r *ServiceGormRepository) Search(
	ctx context.Context,
	f domain.SearchFilter,
) ([]dto.ServiceCardDTO, error) {

	q := r.db.WithContext(ctx).
		Table("services").
		Select(`services.id, services.description, services.price,
            services.duration_minutes, services.session_count, services.mode,
            services.start_time, services.end_time,
            zones.name AS zone, categories.name AS category,
            users.id AS trainer_id, users.first_name AS trainer_first_name,
            users.last_name AS trainer_last_name, users.profile_picture AS trainer_profile_picture,
            (SELECT service_images.path FROM service_images
                WHERE service_images.service_id = services.id
                ORDER BY service_images.id LIMIT 1) AS highlight_image,
            `+trainerRatingExpr+` AS trainer_average_rating`).
		Joins("JOIN categories ON categories.id = services.category_id").
		Joins("JOIN zones ON zones.id = services.zone_id").
		Joins("JOIN users ON users.id = services.trainer_id").
		Where("services.status = ?", domain.StatusPublished)

	if f.MinPrice != nil {
		q = q.Where("services.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("services.price <= ?", *f.MaxPrice)
	}
	if f.Mode != "" {
		q = q.Where("services.mode = ?", f.Mode)
	}
	if f.MaxDuration != nil {
		q = q.Where("services.duration_minutes <= ?", *f.MaxDuration)
	}
	if f.Zone != "" {
		q = q.Where("zones.name = ?", f.Zone)
	}
	if f.Category != "" {
		q = q.Where("categories.name = ?", f.Category)
	}
	if f.MinRating != nil {
		q = q.Where(trainerRatingExpr+" >= ?", *f.MinRating)
	}

	q = q.Order("trainer_average_rating DESC").Order("services.id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var out []dto.ServiceCardDTO
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}

	for i := range out {
		out[i].TrainerAverageRating = round2(out[i].TrainerAverageRating)
	}
	return out, nil
}

func (r *ServiceGormRepository) RecordViews(ctx context.Context, serviceIDs ...uint) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	views := make([]models.View, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		views = append(views, models.View{ServiceID: id})
	}
	return r.db.WithContext(ctx).Create(&views).Error
}

func (r *ServiceGormRepository) TrainerRating(ctx context.Context, trainerID uint) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating)").
		Where("trainer_id = ?", trainerID).
		Scan(&avg).Error; err != nil {
		return nil, err
	}

	if !avg.Valid {
		return nil, nil
	}
	v := round2(avg.Float64)
	return &v, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compile-time check
var _ domain.Repository = (*ServiceGormRepository)(nil)
