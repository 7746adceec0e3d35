package entity

import (
	"gorm.io/gorm"
)

// CartEntry is a pending selection of one menu item. Price is a snapshot
// taken when the item was added, not a live reference to the menu.
type CartEntry struct {
	gorm.Model
	OwnerEmail string `gorm:"index;not null" json:"email"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}
