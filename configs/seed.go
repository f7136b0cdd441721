package configs

import (
	"log"

	"restaurant-backend/entity"
	"restaurant-backend/services"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the staff account on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu inserts the category lookups and, when the menu is still empty,
// the sample items. Explicitly a startup step: request handlers never seed.
func SeedMenu() error {
	db := DB()

	for _, name := range []string{
		entity.CategoryStarters, entity.CategoryMainCourse,
		entity.CategoryBeverages, entity.CategoryDesserts,
	} {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name})
	}

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sampleItems := []entity.MenuItem{
		{
			Name:        "Paneer Tikka",
			Category:    entity.CategoryStarters,
			Price:       20000,
			Description: "Marinated paneer cubes grilled with spices.",
			Rating:      4.5,
			IsPopular:   true,
			ImageURL:    "https://images.unsplash.com/photo-1604908176997-1251884b08a7",
			IsAvailable: true,
		},
		{
			Name:        "Veg Manchuria",
			Category:    entity.CategoryStarters,
			Price:       18000,
			Description: "Crispy vegetable balls tossed in tangy sauce.",
			Rating:      4.3,
			ImageURL:    "https://images.unsplash.com/photo-1604908176997-1251884b08a7",
			IsAvailable: true,
		},
		{
			Name:        "Chicken Biryani",
			Category:    entity.CategoryMainCourse,
			Price:       26000,
			Description: "Fragrant basmati rice cooked with spiced chicken.",
			Rating:      4.6,
			IsPopular:   true,
			ImageURL:    "https://images.unsplash.com/photo-1604908176997-1251884b08a7",
			IsAvailable: true,
		},
		{
			Name:        "Veg Fried Rice",
			Category:    entity.CategoryMainCourse,
			Price:       22000,
			Description: "Stir fried rice with mixed vegetables and sauces.",
			Rating:      4.2,
			ImageURL:    "https://images.unsplash.com/photo-1604908176997-1251884b08a7",
			IsAvailable: true,
		},
		{
			Name:        "Mango Juice",
			Category:    entity.CategoryBeverages,
			Price:       9000,
			Description: "Refreshing chilled mango juice.",
			Rating:      4.4,
			ImageURL:    "https://images.unsplash.com/photo-1577801596755-03888a34ec6c",
			IsAvailable: true,
		},
		{
			Name:        "Cool Drink",
			Category:    entity.CategoryBeverages,
			Price:       6000,
			Description: "Carbonated soft drink served chilled.",
			Rating:      4.1,
			ImageURL:    "https://images.unsplash.com/photo-1541976076758-25a71c0b2f2d",
			IsAvailable: true,
		},
		{
			Name:        "Gulab Jamun",
			Category:    entity.CategoryDesserts,
			Price:       12000,
			Description: "Soft milk dumplings soaked in sugar syrup.",
			Rating:      4.7,
			IsPopular:   true,
			ImageURL:    "https://images.unsplash.com/photo-1606491956689-2ea866880c84",
			IsAvailable: true,
		},
		{
			Name:        "Ice Cream",
			Category:    entity.CategoryDesserts,
			Price:       10000,
			Description: "Creamy vanilla ice cream scoop.",
			Rating:      4.3,
			ImageURL:    "https://images.unsplash.com/photo-1501446529957-6226bd447c46",
			IsAvailable: true,
		},
	}

	for i := range sampleItems {
		// Sample data ships with known images; keyword match fills them in.
		sampleItems[i].Image = services.ImagePathForMenuName(sampleItems[i].Name)
		if err := db.Create(&sampleItems[i]).Error; err != nil {
			return err
		}
	}

	log.Println("sample menu seeded")
	return nil
}
