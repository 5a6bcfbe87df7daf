package user

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/mailer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// LOGIN
// ======================================================

type LoginUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

type LoginOutput struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type Login struct {
	repo   domain.Repository
	tokens *auth.TokenService
}

func NewLogin(repo domain.Repository, tokens *auth.TokenService) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginOutput, error) {
	u, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if httperr.IsBusiness(err, "email_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.Generate(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token: token,
		User:  LoginUser{ID: u.ID, Email: u.Email, Type: u.Role},
	}, nil
}

// ======================================================
// FORGOT PASSWORD
// ======================================================

type ForgotPassword struct {
	repo      domain.Repository
	mail      mailer.Sender
	clientURL string
	now       func() time.Time
}

func NewForgotPassword(repo domain.Repository, mail mailer.Sender, clientURL string) *ForgotPassword {
	return &ForgotPassword{
		repo:      repo,
		mail:      mail,
		clientURL: strings.TrimRight(clientURL, "/"),
		now:       time.Now,
	}
}

// Execute stores a one hour reset token and mails the link to the user.
func (uc *ForgotPassword) Execute(ctx context.Context, email string) error {
	u, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return err
	}

	if err := uc.repo.CreateReset(ctx, &models.PasswordReset{
		Email:     u.Email,
		Token:     token,
		ExpiresAt: uc.now().Add(domain.ResetTokenTTL),
	}); err != nil {
		return err
	}

	subject, body := mailer.PasswordReset(u.FirstName, uc.clientURL+"/reset-password?token="+token)
	return uc.mail.Send(u.Email, subject, body)
}

// ======================================================
// RESET PASSWORD
// ======================================================

type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

type ResetPassword struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResetPassword(repo domain.Repository) *ResetPassword {
	return &ResetPassword{repo: repo, now: time.Now}
}

func (uc *ResetPassword) Execute(ctx context.Context, in ResetPasswordInput) error {
	reset, err := uc.repo.FindReset(ctx, in.Token)
	if err != nil {
		return err
	}
	if reset.ExpiresAt.Before(uc.now()) {
		return httperr.ErrBusiness("invalid_token")
	}

	if err := checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}

	return uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		if err := tx.UpdatePasswordByEmail(ctx, reset.Email, hash); err != nil {
			return err
		}
		return tx.DeleteResets(ctx, reset.Email)
	})
}
