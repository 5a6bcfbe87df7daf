package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
)

func strp(s string) *string { return &s }

var (
	parties = Parties{ClientID: 10, TrainerID: 20}
	client  = Actor{ID: 10, Role: "client"}
	trainer = Actor{ID: 20, Role: "trainer"}
	other   = Actor{ID: 30, Role: "client"}
	window  = ServiceWindow{
		Days:      []string{"monday", "wednesday"},
		StartTime: "09:00",
		EndTime:   "18:00",
	}
)

func TestExpandBusySlots(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	slots, err := ExpandBusySlots(start, "09:00", 60, 3)
	require.NoError(t, err)

	assert.Equal(t, []BusySlot{
		{Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2024-01-08", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2024-01-15", StartTime: "09:00", EndTime: "10:00"},
	}, slots)
}

func TestExpandBusySlots_EdgeCases(t *testing.T) {
	start := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)

	slots, err := ExpandBusySlots(start, "17:30", 90, 2)
	require.NoError(t, err)
	assert.Equal(t, "19:00", slots[0].EndTime)
	assert.Equal(t, "2024-03-04", slots[1].Date, "crosses month boundary")

	slots, err = ExpandBusySlots(start, "09:00", 60, 0)
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = ExpandBusySlots(start, "9am", 60, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "monday", WeekdayName(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", WeekdayName(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, st)

	_, err = ParseStatus("approved")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition(t *testing.T) {
	_, err := CanTransition("accepted", trainer, parties)
	assert.NoError(t, err)

	_, err = CanTransition("accepted", client, parties)
	assert.True(t, httperr.IsBusiness(err, "only_trainer_accept"))

	_, err = CanTransition("cancelled", client, parties)
	assert.NoError(t, err)
	_, err = CanTransition("cancelled", trainer, parties)
	assert.NoError(t, err)
	_, err = CanTransition("cancelled", other, parties)
	assert.True(t, httperr.IsBusiness(err, "cancel_not_allowed"))

	_, err = CanTransition("completed", other, parties)
	assert.NoError(t, err)

	_, err = CanTransition("pending", trainer, parties)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	_, err = CanTransition("bogus", trainer, parties)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, slot)

	_, err = ParseSlot(strp("2024-01-01"), nil)
	assert.True(t, httperr.IsBusiness(err, "missing_schedule_fields"))
	_, err = ParseSlot(nil, strp("09:00"))
	assert.True(t, httperr.IsBusiness(err, "missing_schedule_fields"))

	_, err = ParseSlot(strp("01-01-2024"), strp("09:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	_, err = ParseSlot(strp("2024-01-01"), strp("9:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	slot, err = ParseSlot(strp("2024-01-03"), strp("10:00"))
	require.NoError(t, err)
	assert.Equal(t, "wednesday", slot.Weekday)
	assert.Equal(t, "10:00", slot.StartTime)
}

func TestCheckSchedule(t *testing.T) {
	monday := Slot{Weekday: "monday", StartTime: "09:00"}

	assert.NoError(t, CheckSchedule(StatusAccepted, client, parties, window, monday))

	// status is checked before the caller
	err := CheckSchedule(StatusPending, trainer, parties, window, monday)
	assert.True(t, httperr.IsBusiness(err, "contract_not_accepted"))

	err = CheckSchedule(StatusAccepted, trainer, parties, window, monday)
	assert.True(t, httperr.IsBusiness(err, "only_client_schedule"))

	err = CheckSchedule(StatusAccepted, client, parties, window, Slot{Weekday: "tuesday", StartTime: "10:00"})
	require.Error(t, err)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "The service is not available on tuesday", be.Message)
}

func TestCheckSchedule_Window(t *testing.T) {
	at := func(hm string) error {
		return CheckSchedule(StatusAccepted, client, parties, window, Slot{Weekday: "wednesday", StartTime: hm})
	}

	assert.NoError(t, at("09:00"), "start is inclusive")
	assert.NoError(t, at("17:59"))
	assert.True(t, httperr.IsBusiness(at("18:00"), "outside_service_hours"), "end is exclusive")
	assert.True(t, httperr.IsBusiness(at("08:59"), "outside_service_hours"))
}
