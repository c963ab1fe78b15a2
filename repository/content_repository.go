package repository

import (
	"context"
	"sort"

	"hospitality/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository stores the (section, key) -> value text blocks.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// List returns every block, or only one section when section is set.
func (r *ContentRepository) List(ctx context.Context, section string) ([]entity.Content, error) {
	tx := r.DB.WithContext(ctx)
	if section != "" {
		tx = tx.Where("section = ?", section)
	}
	items := []entity.Content{}
	if err := tx.Order("section asc").Order("content_key asc").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// Section returns the key -> value map of one section.
func (r *ContentRepository) Section(ctx context.Context, section string) (map[string]string, error) {
	items, err := r.List(ctx, section)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, c := range items {
		out[c.Key] = c.Value
	}
	return out, nil
}

// Upsert writes value under (section, key) and returns the stored row.
func (r *ContentRepository) Upsert(ctx context.Context, section, key, value string) (*entity.Content, error) {
	db := r.DB.WithContext(ctx)
	if err := upsert(db, section, key, value); err != nil {
		return nil, err
	}
	var stored entity.Content
	if err := db.Where("section = ? AND content_key = ?", section, key).First(&stored).Error; err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

// ReplaceSection upserts every entry of data and removes the keys of the
// section that data does not name, in one transaction.
func (r *ContentRepository) ReplaceSection(ctx context.Context, section string, data map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			if err := upsert(tx, section, k, data[k]); err != nil {
				return err
			}
		}
		stale := tx.Where("section = ?", section)
		if len(keys) > 0 {
			stale = stale.Where("content_key NOT IN ?", keys)
		}
		return translate(stale.Delete(&entity.Content{}).Error)
	})
	if err != nil {
		return nil, err
	}
	return r.Section(ctx, section)
}

func upsert(db *gorm.DB, section, key, value string) error {
	row := entity.Content{Section: section, Key: key, Value: value}
	return translate(db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}, {Name: "content_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error)
}
