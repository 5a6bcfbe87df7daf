package review

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/review"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// SUBMIT
// ======================================================

type SubmitReviewInput struct {
	ClientID  uint
	TrainerID uint
	Rating    int
	Comment   string
}

type SubmitReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitReview(repo domain.Repository, audit *audit.Dispatcher) *SubmitReview {
	return &SubmitReview{repo: repo, audit: audit}
}

func (uc *SubmitReview) Execute(ctx context.Context, in SubmitReviewInput) (*models.Review, error) {
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	exists, err := uc.repo.TrainerExists(ctx, in.TrainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness("trainer_not_found")
	}

	hired, err := uc.repo.HasHired(ctx, in.ClientID, in.TrainerID)
	if err != nil {
		return nil, err
	}
	if !hired {
		return nil, httperr.ErrBusiness("review_not_allowed")
	}

	reviewed, err := uc.repo.HasReviewed(ctx, in.ClientID, in.TrainerID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, httperr.ErrBusiness("already_reviewed")
	}

	rv := &models.Review{
		ClientID:  in.ClientID,
		TrainerID: in.TrainerID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}

// ======================================================
// READ
// ======================================================

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) ForTrainer(ctx context.Context, trainerID uint) ([]dto.ReviewDTO, error) {
	exists, err := uc.repo.TrainerExists(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness("trainer_not_found")
	}
	return uc.repo.ListForTrainer(ctx, trainerID)
}

// Top returns the best reviews overall, newest first among equal ratings.
func (uc *ListReviews) Top(ctx context.Context, limit int) ([]dto.ReviewDTO, error) {
	if limit <= 0 {
		limit = domain.DefaultTopLimit
	}
	return uc.repo.Top(ctx, limit)
}
