package repository

import (
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}
