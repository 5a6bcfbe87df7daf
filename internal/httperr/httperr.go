package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Handle writes a business error with its mapped status and collapses
// anything else to a 500, logging the cause.
func Handle(c *gin.Context, err error, fallbackCode string) {
	if be, ok := AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = messageFor(be.Code)
		}
		Write(c, StatusOf(be.Code), be.Code, msg)
		return
	}

	log.Printf(
		"internal_error method=%s path=%s code=%s err=%v",
		c.Request.Method, c.Request.URL.Path, fallbackCode, err,
	)
	Internal(c, fallbackCode, "Internal server error.")
}

var messages = map[string]string{
	"invalid_request":         "Invalid request data.",
	"invalid_status":          "Invalid status.",
	"missing_schedule_fields": "start_date and start_time must be sent together.",
	"invalid_date":            "start_date must use the YYYY-MM-DD format.",
	"invalid_time":            "Times must use the HH:MM format.",
	"contract_not_accepted":   "The contract must be accepted before scheduling.",
	"only_trainer_accept":     "Only the trainer can accept this contract.",
	"cancel_not_allowed":      "You are not allowed to cancel this contract.",
	"only_client_schedule":    "Only the client can schedule this contract.",
	"outside_service_hours":   "The selected time is outside the service hours.",
	"slot_already_booked":     "This time is already booked by another client.",
	"only_trainer_upload":     "Only the trainer can upload files to this contract.",
	"day_not_available":       "The service is not available on that day.",
	"not_contract_party":      "You are not part of this contract.",
	"not_service_owner":       "You do not own this service.",
	"not_trainer_owner":       "You can only manage your own profile.",
	"forbidden":               "Forbidden.",
	"review_not_allowed":      "You must have hired this trainer to review them.",
	"already_reviewed":        "You already reviewed this trainer.",
	"invalid_rating":          "Rating must be between 1 and 5.",
	"user_not_found":          "User not found.",
	"trainer_not_found":       "Trainer not found.",
	"service_not_found":       "Service not found.",
	"contract_not_found":      "Contract not found.",
	"email_not_found":         "No account uses that email.",
	"file_not_found":          "File not found.",
	"email_taken":             "Email is already registered.",
	"invalid_email_domain":    "Email domain does not accept mail.",
	"weak_password":           "Password needs 8 characters, an uppercase letter, a digit and a special character.",
	"password_mismatch":       "Passwords do not match.",
	"invalid_role":            "type must be client or trainer.",
	"invalid_token":           "Invalid or expired token.",
	"invalid_mode":            "mode must be virtual or in-person.",
	"invalid_days":            "At least one valid weekday is required.",
	"invalid_time_range":      "start_time must be before end_time.",
	"missing_zone_or_address": "In-person services need a zone and an address.",
	"too_many_images":         "A service can have at most 4 images.",
	"invalid_image":           "Images must be .jpg, .jpeg or .png.",
	"invalid_service_fields":  "duration_minutes, session_count and price must be positive.",
	"nothing_to_update":       "Nothing to update.",
	"invalid_signature":       "Invalid webhook signature.",
	"payments_unavailable":    "Payments are not configured.",
	"service_not_published":   "Service not found.",
	"category_not_found":      "Category not found.",
	"zone_not_found":          "Zone not found.",
	"invalid_filter":          "Invalid filter.",
	"invalid_credentials":     "Invalid email or password.",
	"missing_file":            "A file is required.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
