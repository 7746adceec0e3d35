package repository

import (
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) Create(entry *entity.CartEntry) error {
	return r.DB.Create(entry).Error
}

func (r *CartRepository) ListByOwner(email string) ([]entity.CartEntry, error) {
	var entries []entity.CartEntry
	err := r.DB.Where("owner_email = ?", email).Find(&entries).Error
	return entries, err
}

func (r *CartRepository) FindByID(id uint) (*entity.CartEntry, error) {
	var entry entity.CartEntry
	err := r.DB.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *CartRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.CartEntry{}, id)
	return res.RowsAffected, res.Error
}

// OwnedIDsIn returns which of the given ids currently exist and belong to
// the owner. Runs inside the settlement transaction.
func (r *CartRepository) OwnedIDsIn(tx *gorm.DB, email string, ids []uint) ([]uint, error) {
	var out []uint
	err := tx.Model(&entity.CartEntry{}).
		Where("owner_email = ? AND id IN ?", email, ids).
		Pluck("id", &out).Error
	return out, err
}

// DeleteOwnedIn retires the owner's entries among ids and reports how many
// rows were actually removed.
func (r *CartRepository) DeleteOwnedIn(tx *gorm.DB, email string, ids []uint) (int64, error) {
	res := tx.Where("owner_email = ? AND id IN ?", email, ids).Delete(&entity.CartEntry{})
	return res.RowsAffected, res.Error
}
