package contract

import (
	"context"
	"io"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type ContractFiles struct {
	repo  domain.Repository
	store storage.Store
}

func NewContractFiles(repo domain.Repository, store storage.Store) *ContractFiles {
	return &ContractFiles{repo: repo, store: store}
}

// List is open to both parties of an accepted contract.
func (uc *ContractFiles) List(
	ctx context.Context,
	actor domain.Actor,
	contractID uint,
) ([]models.ContractFile, error) {

	c, _, err := loadForParty(ctx, uc.repo, actor, contractID)
	if err != nil {
		return nil, err
	}
	if domain.Status(c.Status) != domain.StatusAccepted {
		return nil, httperr.ErrBusiness("contract_not_accepted")
	}

	return uc.repo.ListFiles(ctx, c.ID)
}

// Upload is reserved to the trainer of an accepted contract.
func (uc *ContractFiles) Upload(
	ctx context.Context,
	actor domain.Actor,
	contractID uint,
	filename string,
	r io.Reader,
) (*models.ContractFile, error) {

	c, parties, err := loadForParty(ctx, uc.repo, actor, contractID)
	if err != nil {
		return nil, err
	}
	if !parties.IsTrainer(actor) {
		return nil, httperr.ErrBusiness("only_trainer_upload")
	}
	if domain.Status(c.Status) != domain.StatusAccepted {
		return nil, httperr.ErrBusiness("contract_not_accepted")
	}

	path, err := uc.store.Save(ctx, storage.DirContractFiles, storage.ObjectName(filename), r)
	if err != nil {
		return nil, err
	}

	f := &models.ContractFile{
		ContractID: c.ID,
		Name:       filename,
		Path:       path,
	}
	if err := uc.repo.CreateFile(ctx, f); err != nil {
		_ = uc.store.Delete(ctx, path)
		return nil, err
	}

	return f, nil
}
