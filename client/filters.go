package client

import (
	"net/url"
	"strconv"
)

// Params are list filters; unset fields are left out of the query.
type Params interface {
	Values() url.Values
}

type NoFilter struct{}

func (NoFilter) Values() url.Values { return url.Values{} }

type MenuFilter struct {
	Category string
	Type     string
	Search   string
}

func (f MenuFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "category", f.Category)
	setString(v, "type", f.Type)
	setString(v, "search", f.Search)
	return v
}

type BookingFilter struct {
	Status string
	Date   string
}

func (f BookingFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setString(v, "date", f.Date)
	return v
}

type ContactFilter struct {
	Status string
}

func (f ContactFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	return v
}

// ActiveFilter is tri-state: nil lists everything.
type ActiveFilter struct {
	Active *bool
}

func (f ActiveFilter) Values() url.Values {
	v := url.Values{}
	setBool(v, "active", f.Active)
	return v
}

type OfferFilter struct {
	Active *bool
	// Current keeps offers whose date window contains today.
	Current bool
}

func (f OfferFilter) Values() url.Values {
	v := url.Values{}
	setBool(v, "active", f.Active)
	if f.Current {
		v.Set("current", "true")
	}
	return v
}

type GalleryFilter struct {
	Category string
}

func (f GalleryFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "category", f.Category)
	return v
}

// Bool is a helper for the tri-state filters.
func Bool(b bool) *bool { return &b }

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setBool(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}

func withQuery(path string, p Params) string {
	if p == nil {
		return path
	}
	if q := p.Values().Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
