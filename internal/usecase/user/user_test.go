package user

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

const strongPassword = "Secret#123"

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func setup(t *testing.T) (*gorm.DB, *repository.UserGormRepository) {
	t.Helper()
	db := dbtest.New(t)
	return db, repository.NewUserGormRepository(db)
}

func register(t *testing.T, repo *repository.UserGormRepository, email, role string) *models.User {
	t.Helper()
	u, err := NewRegister(repo, nil).Execute(context.Background(), RegisterInput{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           email,
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
		Role:            role,
	})
	require.NoError(t, err)
	return u
}

// ------ Register ------

func TestRegister(t *testing.T) {
	_, repo := setup(t)

	u := register(t, repo, "  Ana@Example.com ", models.RoleTrainer)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, models.DefaultProfilePicture, u.ProfilePicture)
	assert.True(t, auth.CheckPassword(u.PasswordHash, strongPassword))
}

func TestRegister_Rejects(t *testing.T) {
	_, repo := setup(t)
	register(t, repo, "taken@example.com", models.RoleClient)

	base := RegisterInput{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "new@example.com",
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
		Role:            models.RoleClient,
	}

	cases := map[string]func(in *RegisterInput){
		"invalid_role":      func(in *RegisterInput) { in.Role = "admin" },
		"weak_password":     func(in *RegisterInput) { in.Password, in.ConfirmPassword = "short", "short" },
		"password_mismatch": func(in *RegisterInput) { in.ConfirmPassword = "Other#1234" },
		"email_taken":       func(in *RegisterInput) { in.Email = "TAKEN@example.com" },
		"invalid_request":   func(in *RegisterInput) { in.FirstName = " " },
	}

	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := NewRegister(repo, nil).Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, code), "got %v", err)
		})
	}
}

func TestRegister_DomainCheck(t *testing.T) {
	_, repo := setup(t)

	uc := NewRegister(repo, func(string) bool { return false })
	_, err := uc.Execute(context.Background(), RegisterInput{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "ana@nowhere.invalid",
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
		Role:            models.RoleClient,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

// ------ Login ------

func TestLogin(t *testing.T) {
	_, repo := setup(t)
	u := register(t, repo, "ana@example.com", models.RoleTrainer)
	tokens := auth.NewTokenService("secret", time.Hour)

	out, err := NewLogin(repo, tokens).Execute(context.Background(), "ANA@example.com", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, LoginUser{ID: u.ID, Email: "ana@example.com", Type: models.RoleTrainer}, out.User)

	claims, err := tokens.Parse(out.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
	assert.Equal(t, models.RoleTrainer, claims.Role)

	_, err = NewLogin(repo, tokens).Execute(context.Background(), "ana@example.com", "Wrong#1234")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = NewLogin(repo, tokens).Execute(context.Background(), "ghost@example.com", strongPassword)
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

// ------ Password reset ------

func TestForgotAndResetPassword(t *testing.T) {
	db, repo := setup(t)
	register(t, repo, "ana@example.com", models.RoleClient)
	mail := &fakeMailer{}

	err := NewForgotPassword(repo, mail, "http://localhost:5173/").Execute(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)

	var reset models.PasswordReset
	require.NoError(t, db.First(&reset).Error)
	assert.Contains(t, mail.sent[0].body, "http://localhost:5173/reset-password?token="+reset.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), reset.ExpiresAt, time.Minute)

	newPassword := "Changed#456"
	err = NewResetPassword(repo).Execute(context.Background(), ResetPasswordInput{
		Token:           reset.Token,
		Password:        newPassword,
		ConfirmPassword: newPassword,
	})
	require.NoError(t, err)

	u, err := repo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(u.PasswordHash, newPassword))

	var left int64
	db.Model(&models.PasswordReset{}).Count(&left)
	assert.Zero(t, left)

	err = NewResetPassword(repo).Execute(context.Background(), ResetPasswordInput{
		Token: reset.Token, Password: newPassword, ConfirmPassword: newPassword,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	_, repo := setup(t)
	mail := &fakeMailer{}

	err := NewForgotPassword(repo, mail, "http://localhost").Execute(context.Background(), "ghost@example.com")
	assert.True(t, httperr.IsBusiness(err, "email_not_found"))
	assert.Empty(t, mail.sent)
}

func TestResetPassword_Expired(t *testing.T) {
	db, repo := setup(t)
	register(t, repo, "ana@example.com", models.RoleClient)
	require.NoError(t, db.Create(&models.PasswordReset{
		Email:     "ana@example.com",
		Token:     "expired",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	err := NewResetPassword(repo).Execute(context.Background(), ResetPasswordInput{
		Token: "expired", Password: strongPassword, ConfirmPassword: strongPassword,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

// ------ Trainer profile ------

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))
	for x := 0; x < 800; x++ {
		img.Set(x, x%400, color.RGBA{R: 10, G: 200, B: 90, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUpdateTrainerProfile(t *testing.T) {
	_, repo := setup(t)
	root := t.TempDir()
	store, err := storage.NewLocal(root, storage.LocalURLPrefix)
	require.NoError(t, err)

	trainer := register(t, repo, "coach@example.com", models.RoleTrainer)
	uc := NewUpdateTrainerProfile(repo, store, nil)

	desc := "  Certified coach  "
	out, err := uc.Execute(context.Background(), UpdateTrainerProfileInput{
		CallerID:    trainer.ID,
		CallerRole:  models.RoleTrainer,
		TrainerID:   trainer.ID,
		Description: &desc,
		Picture:     &Picture{Name: "me.png", Body: bytes.NewReader(pngBytes(t))},
	})
	require.NoError(t, err)

	assert.Equal(t, "Certified coach", out.Description)
	assert.True(t, strings.HasPrefix(out.ProfilePicture, "/uploads/profile-pictures/"))
	assert.True(t, strings.HasSuffix(out.ProfilePicture, ".webp"))

	rel := strings.TrimPrefix(out.ProfilePicture, "/uploads/")
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestUpdateTrainerProfile_Rejects(t *testing.T) {
	_, repo := setup(t)
	store, err := storage.NewLocal(t.TempDir(), storage.LocalURLPrefix)
	require.NoError(t, err)

	trainer := register(t, repo, "coach@example.com", models.RoleTrainer)
	client := register(t, repo, "client@example.com", models.RoleClient)
	uc := NewUpdateTrainerProfile(repo, store, nil)
	desc := "bio"

	_, err = uc.Execute(context.Background(), UpdateTrainerProfileInput{
		CallerID: client.ID, CallerRole: models.RoleClient, TrainerID: trainer.ID, Description: &desc,
	})
	assert.True(t, httperr.IsBusiness(err, "not_trainer_owner"))

	_, err = uc.Execute(context.Background(), UpdateTrainerProfileInput{
		CallerID: trainer.ID, CallerRole: models.RoleTrainer, TrainerID: trainer.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "nothing_to_update"))

	_, err = uc.Execute(context.Background(), UpdateTrainerProfileInput{
		CallerID: trainer.ID, CallerRole: models.RoleTrainer, TrainerID: trainer.ID,
		Picture: &Picture{Name: "me.gif", Body: strings.NewReader("GIF89a")},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))

	_, err = uc.Execute(context.Background(), UpdateTrainerProfileInput{
		CallerID: trainer.ID, CallerRole: models.RoleTrainer, TrainerID: trainer.ID,
		Picture: &Picture{Name: "me.png", Body: strings.NewReader("not a png")},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))
}
