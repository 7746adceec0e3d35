package entity

import (
	"gorm.io/gorm"
)

// Payment is append-only settlement history. Rows are never updated or
// deleted once written.
type Payment struct {
	gorm.Model
	PayerEmail     string  `gorm:"index;not null" json:"email"`
	Price          float64 `json:"price"`
	TransactionRef string  `gorm:"uniqueIndex" json:"transactionRef"`

	Items []PaymentItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// PaymentItem pins one settled cart entry to its payment. The unique index
// on CartEntryID makes a second settlement of the same entry a constraint
// violation even under concurrent requests.
type PaymentItem struct {
	gorm.Model
	PaymentID   uint `json:"paymentId"`
	CartEntryID uint `gorm:"uniqueIndex" json:"cartEntryId"`
	MenuItemID  uint `json:"menuItemId"`
}
