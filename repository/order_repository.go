package repository

import (
	"restaurant-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateWithItems writes an order and its lines in one transaction. The
// entity hooks keep line_total and the order aggregates consistent, so the
// caller only supplies snapshots and quantities.
func (r *OrderRepository) CreateWithItems(order *entity.Order, items []entity.OrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderRef = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return tx.First(order, order.ID).Error
	})
}

func (r *OrderRepository) List(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Preload("Items").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByCode(code string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Where("order_id = ?", code).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
