package entity

import (
	"gorm.io/gorm"
)

// Payment methods, fixed set.
const (
	PaymentMethodCOD     = "COD"
	PaymentMethodPhonePe = "PhonePe"
	PaymentMethodGPay    = "GPay"
	PaymentMethodPaytm   = "Paytm"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodPhonePe, PaymentMethodGPay, PaymentMethodPaytm:
		return true
	}
	return false
}

// Order is the persistent system-of-record model. The customer flow keeps
// placed orders in the visitor session instead; rows here come from the
// admin surface only.
type Order struct {
	gorm.Model
	OrderID       string `gorm:"uniqueIndex" json:"orderId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `gorm:"default:Pending" json:"paymentStatus"`
	Status        string `gorm:"default:Placed" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `gorm:"default:3000" json:"deliveryFee"` // paise
	Total       int64 `json:"total"`

	Items      []OrderItem `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE" json:"items"`
	PaymentOTP *PaymentOTP `gorm:"foreignKey:OrderRef" json:"-"`
}

// Total is always subtotal + delivery fee after any save.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.Total = o.Subtotal + o.DeliveryFee
	return nil
}
