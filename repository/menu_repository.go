package repository

import (
	"restaurant-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetAvailable resolves an item id only when the item is currently orderable.
func (r *MenuRepository) GetAvailable(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Where("id = ? AND is_available = ?", id, true).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_available = ?", true).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) (*entity.MenuItem, error) {
	if err := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetImage persists a matched image path; used by the startup image matcher.
func (r *MenuRepository) SetImage(id uint, image string) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("image", image).Error
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}
