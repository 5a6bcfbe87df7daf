package httperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMsg carries a message meant to reach the client verbatim.
func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ===============================
// Status table
// ===============================

// Codes not listed here are plain 400s.
var businessStatus = map[string]int{
	"forbidden":            http.StatusForbidden,
	"not_contract_party":   http.StatusForbidden,
	"not_service_owner":    http.StatusForbidden,
	"not_trainer_owner":    http.StatusForbidden,
	"only_trainer_accept":  http.StatusForbidden,
	"only_client_schedule": http.StatusForbidden,
	"cancel_not_allowed":   http.StatusForbidden,
	"only_trainer_upload":  http.StatusForbidden,
	"review_not_allowed":   http.StatusForbidden,

	"invalid_credentials": http.StatusUnauthorized,

	"user_not_found":        http.StatusNotFound,
	"trainer_not_found":     http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"service_not_published": http.StatusNotFound,
	"contract_not_found":    http.StatusNotFound,
	"email_not_found":       http.StatusNotFound,
	"file_not_found":        http.StatusNotFound,

	"payments_unavailable": http.StatusServiceUnavailable,
}

func StatusOf(code string) int {
	if s, ok := businessStatus[code]; ok {
		return s
	}
	return http.StatusBadRequest
}

// ===============================
// Database errors
// ===============================

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsConstraint reports a unique violation on the named index.
func IsConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == name
	}
	// sqlite does not expose the index name through the translated error.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
