package service

import (
	"strconv"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
)

// SearchFilter narrows the public catalogue. Nil fields are not applied.
type SearchFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	Mode        string
	MaxDuration *int
	Zone        string
	Category    string
	MinRating   *float64
	Limit       int
}

// RawFilter mirrors the query string of GET /services.
type RawFilter struct {
	MinPrice    string `form:"min_price"`
	MaxPrice    string `form:"max_price"`
	Mode        string `form:"mode"`
	MaxDuration string `form:"max_duration"`
	Zone        string `form:"zone"`
	Category    string `form:"category"`
	MinRating   string `form:"min_rating"`
	Limit       string `form:"limit"`
}

func ParseFilter(raw RawFilter) (SearchFilter, error) {
	var f SearchFilter
	var err error

	if f.MinPrice, err = optFloat(raw.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optFloat(raw.MaxPrice); err != nil {
		return f, err
	}
	if f.MinRating, err = optFloat(raw.MinRating); err != nil {
		return f, err
	}

	if raw.MaxDuration != "" {
		d, err := strconv.Atoi(raw.MaxDuration)
		if err != nil || d <= 0 {
			return f, httperr.ErrBusinessMsg("invalid_filter", "max_duration must be a positive integer")
		}
		f.MaxDuration = &d
	}

	if raw.Limit != "" {
		l, err := strconv.Atoi(raw.Limit)
		if err != nil || l <= 0 {
			return f, httperr.ErrBusinessMsg("invalid_filter", "limit must be a positive integer")
		}
		f.Limit = l
	}

	if raw.Mode != "" && raw.Mode != ModeVirtual && raw.Mode != ModeInPerson {
		return f, httperr.ErrBusiness("invalid_mode")
	}
	f.Mode = raw.Mode
	f.Category = raw.Category

	// every virtual service sits in the virtual zone
	if f.Mode != ModeVirtual {
		f.Zone = raw.Zone
	}

	return f, nil
}

func optFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("invalid_filter", "numeric filters must be numbers")
	}
	return &v, nil
}
