package repository

import (
	"context"
	"errors"

	"github.com/movieweb-dev/movieweb/internal/models"
	"gorm.io/gorm"
)

type Users struct {
	conn *gorm.DB
}

func NewUsers(conn *gorm.DB) *Users {
	return &Users{conn: conn}
}

// Create inserts a user. The caller has already trimmed and validated the name.
func (r *Users) Create(ctx context.Context, name string) (models.User, error) {
	user := models.User{Name: name}

	if err := r.conn.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// All returns every user ordered by id.
func (r *Users) All(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := r.conn.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Users) Get(ctx context.Context, id uint) (models.User, error) {
	var user models.User

	err := r.conn.WithContext(ctx).First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}
