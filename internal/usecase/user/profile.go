package user

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	svcdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/imaging"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type Picture struct {
	Name string
	Body io.Reader
}

type UpdateTrainerProfileInput struct {
	CallerID    uint
	CallerRole  string
	TrainerID   uint
	Description *string
	Picture     *Picture
}

type UpdateTrainerProfile struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Dispatcher
}

func NewUpdateTrainerProfile(repo domain.Repository, store storage.Store, audit *audit.Dispatcher) *UpdateTrainerProfile {
	return &UpdateTrainerProfile{repo: repo, store: store, audit: audit}
}

// Execute lets a trainer change their bio and picture. Pictures are stored
// as WebP no larger than 512px.
func (uc *UpdateTrainerProfile) Execute(ctx context.Context, in UpdateTrainerProfileInput) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, in.TrainerID)
	if err != nil {
		return nil, err
	}
	if in.CallerID != u.ID || in.CallerRole != models.RoleTrainer {
		return nil, httperr.ErrBusiness("not_trainer_owner")
	}

	desc := ""
	if in.Description != nil {
		desc = strings.TrimSpace(*in.Description)
	}
	if desc == "" && in.Picture == nil {
		return nil, httperr.ErrBusiness("nothing_to_update")
	}

	fields := map[string]any{}
	if desc != "" {
		fields["description"] = desc
	}

	var newPath string
	if in.Picture != nil {
		if !svcdomain.IsImageName(in.Picture.Name) {
			return nil, httperr.ErrBusiness("invalid_image")
		}

		encoded, err := imaging.ToWebP(in.Picture.Body)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_image")
		}

		newPath, err = uc.store.Save(ctx, storage.DirProfilePictures, storage.ObjectName("picture.webp"), bytes.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		fields["profile_picture"] = newPath
	}

	if err := uc.repo.UpdateUser(ctx, u.ID, fields); err != nil {
		if newPath != "" {
			removeQuietly(ctx, uc.store, newPath)
		}
		return nil, err
	}

	if newPath != "" && u.ProfilePicture != models.DefaultProfilePicture {
		removeQuietly(ctx, uc.store, u.ProfilePicture)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "trainer_profile_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return uc.repo.GetUser(ctx, u.ID)
}

func removeQuietly(ctx context.Context, store storage.Store, path string) {
	_ = store.Delete(ctx, path)
}
