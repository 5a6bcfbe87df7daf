package contract

import (
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
)

type BusySlot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ExpandBusySlots lists every session of a weekly contract: sessionCount
// slots, one week apart, each durationMinutes long.
func ExpandBusySlots(startDate time.Time, startTime string, durationMinutes, sessionCount int) ([]BusySlot, error) {
	clock, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	end := clock.Add(time.Duration(durationMinutes) * time.Minute).Format("15:04")

	slots := make([]BusySlot, 0, max(sessionCount, 0))
	for i := 0; i < sessionCount; i++ {
		slots = append(slots, BusySlot{
			Date:      startDate.AddDate(0, 0, 7*i).Format("2006-01-02"),
			StartTime: startTime,
			EndTime:   end,
		})
	}
	return slots, nil
}
