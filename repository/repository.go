package repository

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type FilterKind int

const (
	// FilterEqual matches Column against the raw parameter value.
	FilterEqual FilterKind = iota
	// FilterBool matches Column against a parsed boolean; unparsable values are ignored.
	FilterBool
	// FilterSearch is a case-insensitive substring match over Columns.
	FilterSearch
	// FilterCurrentWindow keeps rows whose start_date/end_date window contains today.
	FilterCurrentWindow
)

// Filter maps one query parameter onto a WHERE clause.
type Filter struct {
	Param   string
	Kind    FilterKind
	Columns []string
}

// Repository is the table access shared by every document kind.
type Repository[T any] struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{DB: db, Now: time.Now}
}

// List returns the rows matching the recognized parameters in query.
// Parameters without a Filter are ignored.
func (r *Repository[T]) List(ctx context.Context, filters []Filter, query url.Values, order string) ([]T, error) {
	tx := r.DB.WithContext(ctx)
	for _, f := range filters {
		v := strings.TrimSpace(query.Get(f.Param))
		if v == "" {
			continue
		}
		tx = r.apply(tx, f, v)
	}
	if order != "" {
		tx = tx.Order(order)
	}

	items := []T{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *Repository[T]) apply(tx *gorm.DB, f Filter, v string) *gorm.DB {
	switch f.Kind {
	case FilterEqual:
		return tx.Where(f.Columns[0]+" = ?", v)
	case FilterBool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return tx
		}
		return tx.Where(f.Columns[0]+" = ?", b)
	case FilterSearch:
		pattern := "%" + strings.ToLower(v) + "%"
		clauses := make([]string, 0, len(f.Columns))
		args := make([]any, 0, len(f.Columns))
		for _, col := range f.Columns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	case FilterCurrentWindow:
		if b, err := strconv.ParseBool(v); err != nil || !b {
			return tx
		}
		today := r.Now().Format("2006-01-02")
		return tx.
			Where("(start_date IS NULL OR start_date = '' OR start_date <= ?)", today).
			Where("(end_date IS NULL OR end_date = '' OR end_date >= ?)", today)
	}
	return tx
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	return translate(r.DB.WithContext(ctx).Create(item).Error)
}

// Save writes every column of an already stored row. A row deleted in the
// meantime is reported as ErrNotFound and not recreated.
func (r *Repository[T]) Save(ctx context.Context, item *T) error {
	res := r.DB.WithContext(ctx).Model(item).Select("*").Updates(item)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps driver level errors onto the package sentinels. The
// connection must be opened with TranslateError enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
