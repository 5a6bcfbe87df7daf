package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/cache"
	contractdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/payments"
)

const (
	EventPayment = "payment"

	claimTTL = 24 * time.Hour
)

type WebhookInput struct {
	Type      string
	DataID    string
	Signature string
	RequestID string
}

type ProcessWebhook struct {
	repo    domain.Repository
	gateway payments.Gateway
	cache   *cache.Cache
	secret  string
	audit   *audit.Dispatcher
}

func NewProcessWebhook(
	repo domain.Repository,
	gateway payments.Gateway,
	c *cache.Cache,
	secret string,
	audit *audit.Dispatcher,
) *ProcessWebhook {
	return &ProcessWebhook{repo: repo, gateway: gateway, cache: c, secret: secret, audit: audit}
}

// Execute handles one provider notification. Approved payments open a
// pending contract for the buyer unless one is already waiting. Repeated
// notifications for the same payment are ignored.
func (uc *ProcessWebhook) Execute(ctx context.Context, in WebhookInput) error {
	if uc.secret != "" {
		if err := payments.VerifySignature(uc.secret, in.Signature, in.RequestID, in.DataID); err != nil {
			return httperr.ErrBusiness("invalid_signature")
		}
	}

	if in.Type != EventPayment || in.DataID == "" {
		return nil
	}
	if uc.gateway == nil {
		return httperr.ErrBusiness("payments_unavailable")
	}

	key := "webhook:payment:" + in.DataID
	won, err := uc.cache.Claim(ctx, key, claimTTL)
	if err != nil {
		log.Printf("webhook claim failed payment=%s err=%v", in.DataID, err)
		won = true
	}
	if !won {
		return nil
	}

	created, err := uc.process(ctx, in.DataID)
	if err != nil || created == nil {
		// let a later notification retry
		if relErr := uc.cache.Release(ctx, key); relErr != nil {
			log.Printf("webhook release failed payment=%s err=%v", in.DataID, relErr)
		}
	}
	if err != nil {
		return err
	}

	if created != nil && created.ContractID != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &created.ClientID,
			Action:   "payment_approved",
			Entity:   "contract",
			EntityID: created.ContractID,
			Metadata: map[string]any{
				"provider_payment_id": created.ProviderPaymentID,
				"amount":              created.Amount,
			},
		})
	}
	return nil
}

// process returns the recorded payment, or nil when there was nothing to
// record.
func (uc *ProcessWebhook) process(ctx context.Context, providerID string) (*models.Payment, error) {
	p, err := uc.gateway.GetPayment(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if p.Status != payments.StatusApproved {
		return nil, nil
	}

	var out *models.Payment
	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		done, err := tx.IsRecorded(ctx, p.ID)
		if err != nil || done {
			return err
		}

		c, err := tx.PendingContract(ctx, p.ClientID, p.ServiceID)
		if err != nil {
			return err
		}
		if c == nil {
			c = &models.Contract{
				ClientID:  p.ClientID,
				ServiceID: p.ServiceID,
				Status:    string(contractdomain.InitialStatus()),
			}
			if err := tx.CreateContract(ctx, c); err != nil {
				return err
			}
		}

		rec := &models.Payment{
			ProviderPaymentID: p.ID,
			ClientID:          p.ClientID,
			ServiceID:         p.ServiceID,
			ContractID:        &c.ID,
			Status:            p.Status,
			Amount:            p.Amount,
		}
		if err := tx.RecordPayment(ctx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyRecorded) {
		return nil, nil
	}
	return out, err
}
