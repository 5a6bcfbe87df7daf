package user

import (
	"context"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const ResetTokenTTL = time.Hour

type Repository interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Users --------
	// CreateUser maps a duplicate email to email_taken.
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, fields map[string]any) error
	UpdatePasswordByEmail(ctx context.Context, email, hash string) error

	// -------- Password resets --------
	CreateReset(ctx context.Context, r *models.PasswordReset) error
	FindReset(ctx context.Context, token string) (*models.PasswordReset, error)
	DeleteResets(ctx context.Context, email string) error
	DeleteExpiredResets(ctx context.Context, before time.Time) (int64, error)
}
