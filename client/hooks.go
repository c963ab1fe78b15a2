package client

import (
	"context"
	"fmt"

	"hospitality/entity"
)

// Messages are the fixed notifications of one entity's mutations.
type Messages struct {
	CreateSuccess, CreateFailure string
	UpdateSuccess, UpdateFailure string
	DeleteSuccess, DeleteFailure string
}

// Hooks wraps a Resource with caching, invalidation on mutation and user
// notifications.
type Hooks[T any, F Params] struct {
	api    *Resource[T, F]
	cache  *QueryCache
	notify Notifier
	name   string
	msgs   Messages

	uploads    *UploadClient
	uploadType string
}

func NewHooks[T any, F Params](api *Resource[T, F], cache *QueryCache, notify Notifier, name string, msgs Messages) *Hooks[T, F] {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Hooks[T, F]{api: api, cache: cache, notify: notify, name: name, msgs: msgs}
}

// WithImageUpload enables CreateWithImage/UpdateWithImage, filing images
// under entityType.
func (h *Hooks[T, F]) WithImageUpload(uploads *UploadClient, entityType string) *Hooks[T, F] {
	h.uploads = uploads
	h.uploadType = entityType
	return h
}

func (h *Hooks[T, F]) listKey(filter F) QueryKey {
	return QueryKey{Entity: h.name, Params: filter.Values().Encode()}
}

func (h *Hooks[T, F]) itemKey(id string) QueryKey {
	return QueryKey{Entity: h.name + "Item", Params: id}
}

func (h *Hooks[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	return cached(h.cache, h.listKey(filter), func() ([]T, error) {
		return h.api.GetAll(ctx, filter)
	})
}

// Item is inert for an empty id: no request, no error.
func (h *Hooks[T, F]) Item(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	return cached(h.cache, h.itemKey(id), func() (*T, error) {
		return h.api.GetByID(ctx, id)
	})
}

func (h *Hooks[T, F]) Create(ctx context.Context, data any) (*T, error) {
	item, err := h.api.Create(ctx, data)
	if err != nil {
		h.fail(err, h.msgs.CreateFailure)
		return nil, err
	}
	h.cache.InvalidateEntity(h.name)
	h.notify.Success(h.msgs.CreateSuccess)
	return item, nil
}

func (h *Hooks[T, F]) Update(ctx context.Context, id string, data any) (*T, error) {
	item, err := h.api.Update(ctx, id, data)
	if err != nil {
		h.fail(err, h.msgs.UpdateFailure)
		return nil, err
	}
	h.cache.InvalidateEntity(h.name)
	h.cache.Invalidate(h.itemKey(id))
	h.notify.Success(h.msgs.UpdateSuccess)
	return item, nil
}

func (h *Hooks[T, F]) Delete(ctx context.Context, id string) error {
	if _, err := h.api.Delete(ctx, id); err != nil {
		h.fail(err, h.msgs.DeleteFailure)
		return err
	}
	h.cache.InvalidateEntity(h.name)
	h.cache.Invalidate(h.itemKey(id))
	h.notify.Success(h.msgs.DeleteSuccess)
	return nil
}

// CreateWithImage uploads img first, when given, and stores the returned
// url and asset id on item. A failed upload aborts the create.
func (h *Hooks[T, F]) CreateWithImage(ctx context.Context, item *T, img *ImageFile) (*T, error) {
	if err := h.attachImage(ctx, item, img); err != nil {
		h.fail(err, h.msgs.CreateFailure)
		return nil, err
	}
	return h.Create(ctx, item)
}

func (h *Hooks[T, F]) UpdateWithImage(ctx context.Context, id string, item *T, img *ImageFile) (*T, error) {
	if err := h.attachImage(ctx, item, img); err != nil {
		h.fail(err, h.msgs.UpdateFailure)
		return nil, err
	}
	return h.Update(ctx, id, item)
}

func (h *Hooks[T, F]) attachImage(ctx context.Context, item *T, img *ImageFile) error {
	if img == nil {
		return nil
	}
	target, ok := any(item).(entity.ImageTarget)
	if !ok {
		return fmt.Errorf("%s does not carry an image", h.name)
	}
	if h.uploads == nil {
		return fmt.Errorf("image upload is not enabled for %s", h.name)
	}
	res, err := h.uploads.UploadFile(ctx, img, h.uploadType)
	if err != nil {
		return err
	}
	target.SetImage(res.URL, res.PublicID)
	return nil
}

func (h *Hooks[T, F]) fail(err error, fallback string) {
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	h.notify.Error(msg)
}

// ContentHooks caches content by section.
type ContentHooks struct {
	api    *ContentClient
	cache  *QueryCache
	notify Notifier
}

const contentQuery = "content"

func NewContentHooks(api *ContentClient, cache *QueryCache, notify Notifier) *ContentHooks {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &ContentHooks{api: api, cache: cache, notify: notify}
}

func (h *ContentHooks) Section(ctx context.Context, section string) (map[string]string, error) {
	return cached(h.cache, QueryKey{Entity: contentQuery, Params: section}, func() (map[string]string, error) {
		return h.api.GetBySection(ctx, section)
	})
}

func (h *ContentHooks) Update(ctx context.Context, section, key, value string) (*entity.Content, error) {
	c, err := h.api.Update(ctx, section, key, value)
	if err != nil {
		h.fail(err, "Failed to update content")
		return nil, err
	}
	h.cache.Invalidate(QueryKey{Entity: contentQuery, Params: section})
	h.notify.Success("Content updated successfully")
	return c, nil
}

func (h *ContentHooks) BulkUpdate(ctx context.Context, section string, data map[string]string) (map[string]string, error) {
	m, err := h.api.BulkUpdate(ctx, section, data)
	if err != nil {
		h.fail(err, "Failed to save content")
		return nil, err
	}
	h.cache.Invalidate(QueryKey{Entity: contentQuery, Params: section})
	h.notify.Success("Content saved successfully")
	return m, nil
}

func (h *ContentHooks) fail(err error, fallback string) {
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	h.notify.Error(msg)
}
