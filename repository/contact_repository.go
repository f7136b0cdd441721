package repository

import (
	"restaurant-backend/entity"

	"gorm.io/gorm"
)

type ContactRepository struct{ DB *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{DB: db} }

func (r *ContactRepository) Create(msg *entity.ContactMessage) error {
	return r.DB.Create(msg).Error
}
