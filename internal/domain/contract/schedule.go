package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/timezone"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

// Slot is a weekly recurring session starting on Date.
type Slot struct {
	Date      time.Time
	Weekday   string
	StartTime string
}

// WeekdayName returns the lowercase English day name (0=sunday).
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ParseSlot builds a slot from the raw request fields. It returns nil when
// neither field was sent; sending only one of them is an error. The weekday
// always comes from the date.
func ParseSlot(startDate, startTime *string) (*Slot, error) {
	if startDate == nil && startTime == nil {
		return nil, nil
	}
	if startDate == nil || startTime == nil || *startDate == "" || *startTime == "" {
		return nil, httperr.ErrBusiness("missing_schedule_fields")
	}

	date, err := timezone.ParseDate(*startDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsHHMM(*startTime) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	return &Slot{
		Date:      date,
		Weekday:   WeekdayName(date),
		StartTime: *startTime,
	}, nil
}

// ServiceWindow is what a slot is validated against.
type ServiceWindow struct {
	Days      []string
	StartTime string
	EndTime   string
}

// CheckSchedule applies the scheduling rules in order: the contract must be
// accepted, the caller must be the hiring client, the weekday must be offered
// and the start must fall in [StartTime, EndTime).
func CheckSchedule(status Status, actor Actor, p Parties, w ServiceWindow, s Slot) error {
	if status != StatusAccepted {
		return httperr.ErrBusiness("contract_not_accepted")
	}

	if !p.IsClient(actor) {
		return httperr.ErrBusiness("only_client_schedule")
	}

	if !containsDay(w.Days, s.Weekday) {
		return httperr.ErrBusinessMsg(
			"day_not_available",
			fmt.Sprintf("The service is not available on %s", s.Weekday),
		)
	}

	// HH:MM strings compare in clock order.
	if s.StartTime < w.StartTime || s.StartTime >= w.EndTime {
		return httperr.ErrBusinessMsg(
			"outside_service_hours",
			fmt.Sprintf("The service is available from %s to %s", w.StartTime, w.EndTime),
		)
	}

	return nil
}

func ErrSlotTaken() error {
	return httperr.ErrBusinessMsg("slot_already_booked", "This time is already booked by another client")
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
