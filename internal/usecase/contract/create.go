package contract

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type CreateContract struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateContract(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateContract {
	return &CreateContract{
		repo:  repo,
		audit: audit,
	}
}

// Execute hires a published service; the new contract starts pending.
func (uc *CreateContract) Execute(
	ctx context.Context,
	clientID uint,
	serviceID uint,
) (*models.Contract, error) {

	svc, err := uc.repo.GetPublishedService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	c := &models.Contract{
		ClientID:  clientID,
		ServiceID: svc.ID,
		Status:    string(domain.InitialStatus()),
	}
	if err := uc.repo.CreateContract(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "contract_created",
		Entity:   "contract",
		EntityID: &c.ID,
	})

	return c, nil
}
