package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StatusApproved is the provider status of a settled payment.
const StatusApproved = "approved"

var ErrBadReference = errors.New("payments: malformed external reference")

type CheckoutRequest struct {
	ClientID  uint
	ServiceID uint
	Title     string
	Price     float64
}

type Checkout struct {
	ID  string
	URL string
}

// Payment is the subset of a provider payment the webhook needs.
type Payment struct {
	ID        string
	Status    string
	ClientID  uint
	ServiceID uint
	Amount    float64
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
}

// Reference encodes who bought what into the provider's external reference.
func Reference(clientID, serviceID uint) string {
	return fmt.Sprintf("%d:%d", clientID, serviceID)
}

func ParseReference(ref string) (clientID, serviceID uint, err error) {
	left, right, ok := strings.Cut(ref, ":")
	if !ok {
		return 0, 0, ErrBadReference
	}

	c, err := strconv.ParseUint(left, 10, 64)
	if err != nil || c == 0 {
		return 0, 0, ErrBadReference
	}
	s, err := strconv.ParseUint(right, 10, 64)
	if err != nil || s == 0 {
		return 0, 0, ErrBadReference
	}
	return uint(c), uint(s), nil
}
