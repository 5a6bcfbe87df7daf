package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UserGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("email_taken")
	}
	return err
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("email_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *UserGormRepository) UpdatePasswordByEmail(ctx context.Context, email, hash string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", hash).Error
}

// --------------------------------------------------
// Password resets
// --------------------------------------------------

func (r *UserGormRepository) CreateReset(ctx context.Context, pr *models.PasswordReset) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *UserGormRepository) FindReset(ctx context.Context, token string) (*models.PasswordReset, error) {
	var pr models.PasswordReset
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&pr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("invalid_token")
		}
		return nil, err
	}
	return &pr, nil
}

func (r *UserGormRepository) DeleteResets(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.PasswordReset{}).Error
}

func (r *UserGormRepository) DeleteExpiredResets(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&models.PasswordReset{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
