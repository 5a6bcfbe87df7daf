package service

import (
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

// ===============================
// Mode / Status
// ===============================

const (
	ModeVirtual  = "virtual"
	ModeInPerson = "in-person"
)

const (
	StatusPublished    = "published"
	StatusUnpublished  = "unpublished"
	StatusNotPublished = "not-published"
)

const MaxImages = 4

func ValidStatus(s string) bool {
	switch s {
	case StatusPublished, StatusUnpublished, StatusNotPublished:
		return true
	}
	return false
}

// ===============================
// Input
// ===============================

// Input is the editable part of a service, as sent on create and update.
type Input struct {
	Category        string
	Description     string
	DurationMinutes int
	SessionCount    int
	Price           float64
	Mode            string
	Zone            string
	Address         string
	Days            []string
	StartTime       string
	EndTime         string
}

// Normalize validates in and returns the version to persist. Unknown day
// names are dropped; virtual services always point at the virtual zone.
func Normalize(in Input) (Input, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Zone = strings.TrimSpace(in.Zone)
	in.Address = strings.TrimSpace(in.Address)

	if in.Category == "" || in.Description == "" || in.Mode == "" {
		return in, httperr.ErrBusiness("invalid_request")
	}
	if in.DurationMinutes <= 0 || in.SessionCount <= 0 || in.Price <= 0 {
		return in, httperr.ErrBusiness("invalid_service_fields")
	}

	switch in.Mode {
	case ModeVirtual:
		in.Zone = models.VirtualZoneName
		in.Address = models.VirtualZoneName
	case ModeInPerson:
		if in.Zone == "" || in.Address == "" {
			return in, httperr.ErrBusiness("missing_zone_or_address")
		}
	default:
		return in, httperr.ErrBusiness("invalid_mode")
	}

	if !validators.IsHHMM(in.StartTime) || !validators.IsHHMM(in.EndTime) {
		return in, httperr.ErrBusiness("invalid_time")
	}
	if in.StartTime >= in.EndTime {
		return in, httperr.ErrBusiness("invalid_time_range")
	}

	in.Days = filterDays(in.Days)
	if len(in.Days) == 0 {
		return in, httperr.ErrBusiness("invalid_days")
	}

	return in, nil
}

func filterDays(days []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if validators.IsWeekday(d) && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// CheckImageCap enforces current - removed + added <= MaxImages.
func CheckImageCap(current, removed, added int) error {
	if current-removed+added > MaxImages {
		return httperr.ErrBusiness("too_many_images")
	}
	return nil
}

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

func IsImageName(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return imageExts[strings.ToLower(name[i:])]
}
