package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

var (
	mu      sync.RWMutex
	current = DefaultTimezone
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Set changes the marketplace timezone. Invalid names are ignored.
func Set(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	mu.Lock()
	current = tz
	mu.Unlock()
	return true
}

func Name() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Location() *time.Location {
	if loc, err := time.LoadLocation(Name()); err == nil {
		return loc
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate reads a YYYY-MM-DD calendar date in the marketplace timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}
