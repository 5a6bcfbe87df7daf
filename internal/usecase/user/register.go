package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Description     string
}

type Register struct {
	repo domain.Repository

	// DomainCheck, when set, must accept the email's domain.
	DomainCheck func(email string) bool
}

func NewRegister(repo domain.Repository, domainCheck func(string) bool) *Register {
	return &Register{repo: repo, DomainCheck: domainCheck}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if in.Role != models.RoleClient && in.Role != models.RoleTrainer {
		return nil, httperr.ErrBusiness("invalid_role")
	}
	if err := checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}
	if uc.DomainCheck != nil && !uc.DomainCheck(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           in.Role,
		Description:    strings.TrimSpace(in.Description),
		ProfilePicture: models.DefaultProfilePicture,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func checkPassword(password, confirm string) error {
	if !validators.IsStrongPassword(password) {
		return httperr.ErrBusiness("weak_password")
	}
	if password != confirm {
		return httperr.ErrBusiness("password_mismatch")
	}
	return nil
}

// ======================================================
// PUBLIC PROFILE
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return uc.repo.GetUser(ctx, id)
}
