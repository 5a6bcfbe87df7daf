package contract

import "github.com/BruksfildServices01/trainer-marketplace/internal/httperr"

// ===============================
// Contract Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusCancelled, StatusCompleted:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Actors
// ===============================

type Actor struct {
	ID   uint
	Role string
}

// Parties identifies who may act on a contract.
type Parties struct {
	ClientID  uint
	TrainerID uint
}

func (p Parties) IsClient(a Actor) bool {
	return a.ID == p.ClientID
}

func (p Parties) IsTrainer(a Actor) bool {
	return a.ID == p.TrainerID
}

func (p Parties) Includes(a Actor) bool {
	return p.IsClient(a) || p.IsTrainer(a)
}

// ===============================
// Transitions
// ===============================

// CanTransition checks whether actor may move a contract to target.
// Only accepted and cancelled are actor-restricted; completed is open to
// any authenticated caller and pending is not a settable target.
func CanTransition(target string, actor Actor, p Parties) (Status, error) {
	st := Status(target)

	switch st {
	case StatusAccepted:
		if !p.IsTrainer(actor) {
			return "", httperr.ErrBusiness("only_trainer_accept")
		}
	case StatusCancelled:
		if !p.Includes(actor) {
			return "", httperr.ErrBusiness("cancel_not_allowed")
		}
	case StatusCompleted:
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}

	return st, nil
}
