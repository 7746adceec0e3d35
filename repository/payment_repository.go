package repository

import (
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CreateWithItems appends the payment and its line pins in one insert.
func (r *PaymentRepository) CreateWithItems(tx *gorm.DB, payment *entity.Payment) error {
	return tx.Create(payment).Error
}

func (r *PaymentRepository) ListByPayer(email string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Preload("Items").Where("payer_email = ?", email).Find(&payments).Error
	return payments, err
}

// SettledEntryIDs returns the subset of ids already referenced by a payment.
func (r *PaymentRepository) SettledEntryIDs(tx *gorm.DB, ids []uint) ([]uint, error) {
	var out []uint
	err := tx.Model(&entity.PaymentItem{}).
		Where("cart_entry_id IN ?", ids).
		Pluck("cart_entry_id", &out).Error
	return out, err
}

func (r *PaymentRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Payment{}).Count(&n).Error
	return n, err
}

// AllPrices feeds the revenue total; summation happens in the service.
func (r *PaymentRepository) AllPrices() ([]float64, error) {
	var prices []float64
	err := r.DB.Model(&entity.Payment{}).Pluck("price", &prices).Error
	return prices, err
}

// SettledItemRow is one settled line joined to its catalog item.
type SettledItemRow struct {
	Category string
	Price    float64
}

// SettledItemRows resolves every settled line to the menu item's category
// and catalog price. Lines whose menu item no longer exists are dropped,
// matching the join semantics of the breakdown report.
func (r *PaymentRepository) SettledItemRows() ([]SettledItemRow, error) {
	var rows []SettledItemRow
	err := r.DB.Model(&entity.PaymentItem{}).
		Select("menu_items.category AS category, menu_items.price AS price").
		Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id AND menu_items.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}
