package entity

import (
	"time"

	"gorm.io/gorm"
)

// PaymentOTP is schema-only for now: the online payment flow is a frontend
// simulation and never issues or checks a code. Kept as the target table for
// a real verification step.
type PaymentOTP struct {
	gorm.Model
	OTPCode     string    `json:"otpCode"`
	Attempts    int       `gorm:"default:0" json:"attempts"`
	MaxAttempts int       `gorm:"default:3" json:"maxAttempts"`
	IsVerified  bool      `gorm:"default:false" json:"isVerified"`
	ExpiresAt   time.Time `json:"expiresAt"`

	OrderRef uint `gorm:"uniqueIndex" json:"orderId"`
}
