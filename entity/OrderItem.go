package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a denormalized snapshot of a menu item at order time; the
// catalog row may change or disappear without affecting it.
type OrderItem struct {
	gorm.Model
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"` // paise
	Quantity  int    `gorm:"default:1" json:"quantity"`
	LineTotal int64  `json:"lineTotal"`

	OrderRef uint  `json:"orderId"`
	Order    Order `gorm:"foreignKey:OrderRef" json:"-"`

	MenuItemID *uint `json:"menuItemId"`
}

func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.LineTotal = i.Price * int64(i.Quantity)
	return nil
}

// Saving a line re-aggregates the parent order. Raw SQL on purpose: going
// through the ORM here would re-run the Order hooks against a zero struct.
func (i *OrderItem) AfterSave(tx *gorm.DB) error {
	if i.OrderRef == 0 {
		return nil
	}
	var subtotal int64
	if err := tx.Raw(
		"SELECT COALESCE(SUM(line_total), 0) FROM order_items WHERE order_ref = ? AND deleted_at IS NULL",
		i.OrderRef,
	).Scan(&subtotal).Error; err != nil {
		return err
	}
	return tx.Exec(
		"UPDATE orders SET subtotal = ?, total = ? + delivery_fee WHERE id = ?",
		subtotal, subtotal, i.OrderRef,
	).Error
}
