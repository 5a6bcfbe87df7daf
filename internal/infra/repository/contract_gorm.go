package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbpkg "github.com/BruksfildServices01/trainer-marketplace/internal/db"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type ContractGormRepository struct {
	db *gorm.DB
}

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

func (r *ContractGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ContractGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ContractGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ContractGormRepository) GetPublishedService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", serviceID, "published").
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ContractGormRepository) ServiceDays(
	ctx context.Context,
	serviceID uint,
) ([]string, error) {

	var days []string
	err := r.db.WithContext(ctx).
		Model(&models.ServiceDay{}).
		Where("service_id = ?", serviceID).
		Pluck("day", &days).Error
	return days, err
}

// --------------------------------------------------
// Contract
// --------------------------------------------------

func (r *ContractGormRepository) GetContract(
	ctx context.Context,
	id uint,
) (*models.Contract, error) {
	return r.findContract(r.db.WithContext(ctx), id)
}

func (r *ContractGormRepository) LockContract(
	ctx context.Context,
	id uint,
) (*models.Contract, error) {
	return r.findContract(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		id,
	)
}

func (r *ContractGormRepository) findContract(q *gorm.DB, id uint) (*models.Contract, error) {
	var c models.Contract
	if err := q.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("contract_not_found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContractGormRepository) CreateContract(
	ctx context.Context,
	c *models.Contract,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractGormRepository) UpdateContract(
	ctx context.Context,
	id uint,
	fields map[string]any,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Updates(fields).Error

	if err != nil && httperr.IsConstraint(err, dbpkg.AcceptedSlotIndex) {
		return domain.ErrSlotTaken()
	}
	return err
}

func (r *ContractGormRepository) HasPendingContract(
	ctx context.Context,
	clientID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("client_id = ? AND service_id = ? AND status = ?", clientID, serviceID, domain.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *ContractGormRepository) HasSlotConflict(
	ctx context.Context,
	serviceID uint,
	excludeContractID uint,
	weekday string,
	startTime string,
) (bool, error) {

	var conflicts []models.Contract
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"service_id = ? AND id <> ? AND status = ? AND weekday = ? AND start_time = ?",
			serviceID, excludeContractID, domain.StatusAccepted, weekday, startTime,
		).
		Find(&conflicts).Error; err != nil {
		return false, err
	}

	return len(conflicts) > 0, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

const contractListSelect = `
    contracts.id, contracts.status, contracts.requested_at,
    contracts.start_date, contracts.weekday, contracts.start_time,
    contracts.service_id, services.description AS service_description, services.price,
    contracts.client_id, services.trainer_id`

func (r *ContractGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]dto.ContractListDTO, error) {

	var out []dto.ContractListDTO
	err := r.db.WithContext(ctx).
		Table("contracts").
		Select(contractListSelect+`,
            trainers.first_name || ' ' || trainers.last_name AS trainer_name`).
		Joins("JOIN services ON services.id = contracts.service_id").
		Joins("JOIN users trainers ON trainers.id = services.trainer_id").
		Where("contracts.client_id = ?", clientID).
		Order("contracts.requested_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *ContractGormRepository) ListForTrainer(
	ctx context.Context,
	trainerID uint,
) ([]dto.ContractListDTO, error) {

	var out []dto.ContractListDTO
	err := r.db.WithContext(ctx).
		Table("contracts").
		Select(contractListSelect+`,
            clients.first_name || ' ' || clients.last_name AS client_name`).
		Joins("JOIN services ON services.id = contracts.service_id").
		Joins("JOIN users clients ON clients.id = contracts.client_id").
		Where("services.trainer_id = ?", trainerID).
		Order("contracts.requested_at DESC").
		Scan(&out).Error
	return out, err
}

type scheduledRow struct {
	ContractID      uint
	ServiceID       uint
	StartDate       *time.Time
	StartTime       *string
	DurationMinutes int
	SessionCount    int
}

func (r *ContractGormRepository) ListScheduledForTrainer(
	ctx context.Context,
	trainerID uint,
) ([]domain.Scheduled, error) {

	var rows []scheduledRow

	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.id AS contract_id, contracts.service_id,
            contracts.start_date, contracts.start_time,
            services.duration_minutes, services.session_count`).
		Joins("JOIN services ON services.id = contracts.service_id").
		Where("services.trainer_id = ? AND contracts.status = ?", trainerID, domain.StatusAccepted).
		Order("contracts.start_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// rows without a full slot are not scheduled yet
	out := make([]domain.Scheduled, 0, len(rows))
	for _, row := range rows {
		if row.StartDate == nil || row.StartTime == nil {
			continue
		}
		out = append(out, domain.Scheduled{
			ContractID:      row.ContractID,
			ServiceID:       row.ServiceID,
			StartDate:       *row.StartDate,
			StartTime:       *row.StartTime,
			DurationMinutes: row.DurationMinutes,
			SessionCount:    row.SessionCount,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Files
// --------------------------------------------------

func (r *ContractGormRepository) ListFiles(
	ctx context.Context,
	contractID uint,
) ([]models.ContractFile, error) {

	var files []models.ContractFile
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("uploaded_at DESC").
		Find(&files).Error
	return files, err
}

func (r *ContractGormRepository) CreateFile(
	ctx context.Context,
	f *models.ContractFile,
) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// Compile-time check
var _ domain.Repository = (*ContractGormRepository)(nil)
