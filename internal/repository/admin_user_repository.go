package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio-chat/internal/model"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) Create(user *model.AdminUser) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create admin user failed: %w", err)
	}
	return nil
}

func (r *AdminUserRepository) GetByUsername(username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admin user by username failed: %w", err)
	}
	return &user, nil
}

func (r *AdminUserRepository) GetByEmail(email string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admin user by email failed: %w", err)
	}
	return &user, nil
}

func (r *AdminUserRepository) GetByID(id uint) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query admin user by id failed: %w", err)
	}
	return &user, nil
}
