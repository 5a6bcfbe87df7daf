package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type MercadoPagoOptions struct {
	AccessToken     string
	Currency        string
	NotificationURL string
	// ClientURL is the frontend base used for the back URLs.
	ClientURL string
}

type MercadoPago struct {
	preferences preference.Client
	payments    payment.Client
	opts        MercadoPagoOptions
}

func NewMercadoPago(opts MercadoPagoOptions) (*MercadoPago, error) {
	cfg, err := mpconfig.New(opts.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	opts.ClientURL = strings.TrimRight(opts.ClientURL, "/")

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		opts:        opts,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	ref := Reference(req.ClientID, req.ServiceID)

	res, err := m.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         strconv.FormatUint(uint64(req.ServiceID), 10),
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Price,
			CurrencyID: m.opts.Currency,
		}},
		BackURLs: &preference.BackURLsRequest{
			Success: m.opts.ClientURL + "/payment-success",
			Failure: m.opts.ClientURL + "/payment-failure",
			Pending: m.opts.ClientURL + "/payment-pending",
		},
		AutoReturn:        "approved",
		ExternalReference: ref,
		NotificationURL:   m.opts.NotificationURL,
		Metadata: map[string]any{
			"client_id":  req.ClientID,
			"service_id": req.ServiceID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create preference: %w", err)
	}

	return &Checkout{ID: res.ID, URL: res.InitPoint}, nil
}

func (m *MercadoPago) GetPayment(ctx context.Context, id string) (*Payment, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago payment id %q: %w", id, err)
	}

	res, err := m.payments.Get(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("mercadopago get payment: %w", err)
	}

	out := &Payment{
		ID:     strconv.Itoa(res.ID),
		Status: res.Status,
		Amount: res.TransactionAmount,
	}
	if out.ClientID, out.ServiceID, err = ParseReference(res.ExternalReference); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Gateway = (*MercadoPago)(nil)
