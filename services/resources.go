package services

import (
	"time"

	"hospitality/entity"
	"hospitality/repository"
)

const newestFirst = "created_at desc"

func MenuResource() Resource[entity.MenuItem] {
	return Resource[entity.MenuItem]{
		Name:  "menu",
		Label: "Menu item",
		Filters: []repository.Filter{
			{Param: "category", Kind: repository.FilterEqual, Columns: []string{"category"}},
			{Param: "type", Kind: repository.FilterEqual, Columns: []string{"type"}},
			{Param: "search", Kind: repository.FilterSearch, Columns: []string{"name", "description", "category"}},
		},
		Order: newestFirst,
	}
}

func BookingResource() Resource[entity.Booking] {
	return Resource[entity.Booking]{
		Name:  "bookings",
		Label: "Booking",
		Filters: []repository.Filter{
			{Param: "status", Kind: repository.FilterEqual, Columns: []string{"status"}},
			{Param: "date", Kind: repository.FilterEqual, Columns: []string{"date"}},
		},
		Order: newestFirst,
		Prepare: func(b *entity.Booking) {
			b.Status = entity.BookingPending
		},
		Validate: func(b *entity.Booking) error {
			if !b.Status.Valid() {
				return Invalid("status must be one of [pending confirmed cancelled]")
			}
			return nil
		},
	}
}

func ContactResource() Resource[entity.Contact] {
	return Resource[entity.Contact]{
		Name:  "contacts",
		Label: "Contact",
		Filters: []repository.Filter{
			{Param: "status", Kind: repository.FilterEqual, Columns: []string{"status"}},
		},
		Order: newestFirst,
		Prepare: func(c *entity.Contact) {
			c.Status = entity.ContactUnread
		},
		Transition: func(old, c *entity.Contact) error {
			if c.Status.Rank() < old.Status.Rank() {
				return Invalid("status cannot move from %s back to %s", old.Status, c.Status)
			}
			return nil
		},
	}
}

func ServiceResource() Resource[entity.Service] {
	return Resource[entity.Service]{
		Name:  "services",
		Label: "Service",
		Filters: []repository.Filter{
			{Param: "active", Kind: repository.FilterBool, Columns: []string{"is_active"}},
		},
		Order: newestFirst,
	}
}

func OfferResource() Resource[entity.Offer] {
	return Resource[entity.Offer]{
		Name:  "offers",
		Label: "Offer",
		Filters: []repository.Filter{
			{Param: "active", Kind: repository.FilterBool, Columns: []string{"is_active"}},
			{Param: "current", Kind: repository.FilterCurrentWindow},
		},
		Order: newestFirst,
		Validate: func(o *entity.Offer) error {
			// ISO dates compare correctly as strings.
			if o.StartDate != "" && o.EndDate != "" && o.EndDate < o.StartDate {
				return Invalid("endDate must not be before startDate")
			}
			return nil
		},
	}
}

func GalleryResource() Resource[entity.GalleryImage] {
	return Resource[entity.GalleryImage]{
		Name:  "gallery",
		Label: "Image",
		Filters: []repository.Filter{
			{Param: "category", Kind: repository.FilterEqual, Columns: []string{"category"}},
		},
		Order: newestFirst,
		Prepare: func(g *entity.GalleryImage) {
			if g.UploadedAt.IsZero() {
				g.UploadedAt = time.Now().UTC()
			}
		},
	}
}

func LeaderResource() Resource[entity.Leader] {
	return Resource[entity.Leader]{
		Name:  "leaders",
		Label: "Leader",
		Order: newestFirst,
	}
}
