package repository

import (
	"context"
	"strings"

	"hospitality/entity"

	"gorm.io/gorm"
)

// AdminRepository talks to the admins table only.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]entity.Admin, error) {
	admins := []entity.Admin{}
	if err := r.DB.WithContext(ctx).Order("created_at asc").Find(&admins).Error; err != nil {
		return nil, translate(err)
	}
	return admins, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&entity.Admin{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return translate(r.DB.WithContext(ctx).Create(admin).Error)
}

// CreateFirst inserts admin only while the table is empty. The admin takes
// the setup slot, so a concurrent insert that passed the same check still
// fails on the unique index and reports ErrDuplicate.
func (r *AdminRepository) CreateFirst(ctx context.Context, admin *entity.Admin) (created bool, err error) {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	slot := entity.SetupSlotFirstAdmin
	admin.SetupSlot = &slot

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Admin{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, translate(err)
	}
	return created, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&entity.Admin{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
