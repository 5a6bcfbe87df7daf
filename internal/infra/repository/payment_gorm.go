package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	contract "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PaymentGormRepository{db: tx})
	})
}

func (r *PaymentGormRepository) IsRecorded(ctx context.Context, providerPaymentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("provider_payment_id = ?", providerPaymentID).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentGormRepository) RecordPayment(ctx context.Context, p *models.Payment) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return domain.ErrAlreadyRecorded
	}
	return err
}

func (r *PaymentGormRepository) PendingContract(
	ctx context.Context,
	clientID uint,
	serviceID uint,
) (*models.Contract, error) {

	var c models.Contract
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND service_id = ? AND status = ?", clientID, serviceID, contract.StatusPending).
		Order("id ASC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PaymentGormRepository) CreateContract(ctx context.Context, c *models.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
