package auth

import (
	"errors"

	"gorm.io/gorm"
)

// AuthRepository defines admin principal lookups.
type AuthRepository interface {
	GetAdminByUsername(username string) (*Admin, error)
	CreateAdmin(admin *Admin) error
	CountAdmins() (int64, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetAdminByUsername(username string) (*Admin, error) {
	var admin Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *authRepository) CreateAdmin(admin *Admin) error {
	return r.db.Create(admin).Error
}

func (r *authRepository) CountAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&Admin{}).Count(&count).Error
	return count, err
}
