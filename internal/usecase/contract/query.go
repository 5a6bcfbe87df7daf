package contract

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListContracts struct {
	repo domain.Repository
}

func NewListContracts(repo domain.Repository) *ListContracts {
	return &ListContracts{repo: repo}
}

func (uc *ListContracts) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]dto.ContractListDTO, error) {

	if actor.Role == models.RoleTrainer {
		return uc.repo.ListForTrainer(ctx, actor.ID)
	}
	return uc.repo.ListForClient(ctx, actor.ID)
}

// ======================================================
// GET
// ======================================================

type GetContract struct {
	repo domain.Repository
}

func NewGetContract(repo domain.Repository) *GetContract {
	return &GetContract{repo: repo}
}

func (uc *GetContract) Execute(
	ctx context.Context,
	actor domain.Actor,
	contractID uint,
) (*models.Contract, error) {

	c, _, err := loadForParty(ctx, uc.repo, actor, contractID)
	return c, err
}

// loadForParty fetches a contract only the client or the owning trainer
// may see.
func loadForParty(
	ctx context.Context,
	repo domain.Repository,
	actor domain.Actor,
	contractID uint,
) (*models.Contract, domain.Parties, error) {

	c, err := repo.GetContract(ctx, contractID)
	if err != nil {
		return nil, domain.Parties{}, err
	}

	svc, err := repo.GetService(ctx, c.ServiceID)
	if err != nil {
		return nil, domain.Parties{}, err
	}

	parties := domain.Parties{ClientID: c.ClientID, TrainerID: svc.TrainerID}
	if !parties.Includes(actor) {
		return nil, parties, httperr.ErrBusiness("not_contract_party")
	}

	return c, parties, nil
}
