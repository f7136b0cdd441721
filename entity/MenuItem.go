package entity

import (
	"gorm.io/gorm"
)

// Menu categories, fixed set.
const (
	CategoryStarters   = "Starters"
	CategoryMainCourse = "Main Course"
	CategoryBeverages  = "Beverages"
	CategoryDesserts   = "Desserts"
)

func ValidMenuCategory(c string) bool {
	switch c {
	case CategoryStarters, CategoryMainCourse, CategoryBeverages, CategoryDesserts:
		return true
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null" json:"category"`
	Price       int64   `json:"price"` // paise
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	IsPopular   bool    `json:"isPopular"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`

	// Image is a relative path under the media dir (e.g. menu_items/x.jpg),
	// ImageURL an external fallback used when no file was uploaded.
	Image    string `json:"image"`
	ImageURL string `json:"imageUrl"`

	CategoryID *uint `json:"categoryId"`
}
