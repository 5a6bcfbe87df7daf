package payment

import (
	"context"

	contractdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/payments"
)

type CreateCheckout struct {
	services contractdomain.Repository
	gateway  payments.Gateway
}

// NewCreateCheckout accepts a nil gateway; Execute then fails with
// payments_unavailable.
func NewCreateCheckout(services contractdomain.Repository, gateway payments.Gateway) *CreateCheckout {
	return &CreateCheckout{services: services, gateway: gateway}
}

// Execute opens a provider checkout for a published service and returns
// the URL the client is redirected to.
func (uc *CreateCheckout) Execute(ctx context.Context, clientID, serviceID uint) (string, error) {
	if uc.gateway == nil {
		return "", httperr.ErrBusiness("payments_unavailable")
	}

	svc, err := uc.services.GetPublishedService(ctx, serviceID)
	if err != nil {
		return "", err
	}

	out, err := uc.gateway.CreateCheckout(ctx, payments.CheckoutRequest{
		ClientID:  clientID,
		ServiceID: svc.ID,
		Title:     svc.Description,
		Price:     svc.Price,
	})
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
