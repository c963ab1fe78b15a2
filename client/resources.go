package client

import (
	"context"
	"net/http"
	"net/url"

	"hospitality/entity"
)

// Resource is the typed list/get/create/update/delete client of one
// document kind mounted at path.
type Resource[T any, F Params] struct {
	c    *Client
	path string
}

func NewResource[T any, F Params](c *Client, path string) *Resource[T, F] {
	return &Resource[T, F]{c: c, path: path}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (r *Resource[T, F]) GetAll(ctx context.Context, filter F) ([]T, error) {
	var items []T
	if err := r.c.Request(ctx, http.MethodGet, withQuery(r.path, filter), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T, F]) GetByID(ctx context.Context, id string) (*T, error) {
	item := new(T)
	if err := r.c.Request(ctx, http.MethodGet, r.itemPath(id), nil, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Resource[T, F]) Create(ctx context.Context, data any) (*T, error) {
	item := new(T)
	if err := r.c.Request(ctx, http.MethodPost, r.path, data, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update sends data as a partial document; fields it leaves out keep their
// stored values.
func (r *Resource[T, F]) Update(ctx context.Context, id string, data any) (*T, error) {
	item := new(T)
	if err := r.c.Request(ctx, http.MethodPut, r.itemPath(id), data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Resource[T, F]) Delete(ctx context.Context, id string) (*MessageResponse, error) {
	var out MessageResponse
	if err := r.c.Request(ctx, http.MethodDelete, r.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T, F]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (c *Client) Menu() *Resource[entity.MenuItem, MenuFilter] {
	return NewResource[entity.MenuItem, MenuFilter](c, "/menu")
}

func (c *Client) Bookings() *Resource[entity.Booking, BookingFilter] {
	return NewResource[entity.Booking, BookingFilter](c, "/bookings")
}

func (c *Client) Contacts() *Resource[entity.Contact, ContactFilter] {
	return NewResource[entity.Contact, ContactFilter](c, "/contacts")
}

func (c *Client) Services() *Resource[entity.Service, ActiveFilter] {
	return NewResource[entity.Service, ActiveFilter](c, "/services")
}

func (c *Client) Offers() *Resource[entity.Offer, OfferFilter] {
	return NewResource[entity.Offer, OfferFilter](c, "/offers")
}

func (c *Client) Gallery() *Resource[entity.GalleryImage, GalleryFilter] {
	return NewResource[entity.GalleryImage, GalleryFilter](c, "/gallery")
}

func (c *Client) Leaders() *Resource[entity.Leader, NoFilter] {
	return NewResource[entity.Leader, NoFilter](c, "/leaders")
}
