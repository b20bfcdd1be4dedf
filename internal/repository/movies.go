package repository

import (
	"context"
	"errors"

	"github.com/movieweb-dev/movieweb/internal/models"
	"gorm.io/gorm"
)

type Movies struct {
	conn *gorm.DB
}

func NewMovies(conn *gorm.DB) *Movies {
	return &Movies{conn: conn}
}

// ByUser returns the user's movies ordered by id. A user with no movies
// yields an empty slice, not an error.
func (r *Movies) ByUser(ctx context.Context, userID uint) ([]models.Movie, error) {
	var movies []models.Movie

	err := r.conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&movies).Error

	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *Movies) Get(ctx context.Context, id uint) (models.Movie, error) {
	var movie models.Movie

	err := r.conn.WithContext(ctx).First(&movie, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Movie{}, ErrMovieNotFound
		}
		return models.Movie{}, err
	}

	return movie, nil
}

// ExistsByName reports whether the user already has a movie with exactly
// this name. The comparison is case-sensitive.
func (r *Movies) ExistsByName(ctx context.Context, userID uint, name string) (bool, error) {
	var count int64

	err := r.conn.WithContext(ctx).
		Model(&models.Movie{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *Movies) Add(ctx context.Context, movie *models.Movie) error {
	return r.conn.WithContext(ctx).Create(movie).Error
}

// Rename updates the movie's title only. Returns ErrMovieNotFound when the
// id does not resolve; no other column is touched.
func (r *Movies) Rename(ctx context.Context, id uint, newTitle string) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		Update("name", newTitle)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// Delete removes the movie. A second delete of the same id reports
// ErrMovieNotFound and leaves every other row alone.
func (r *Movies) Delete(ctx context.Context, id uint) error {
	result := r.conn.WithContext(ctx).Delete(&models.Movie{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}

	return nil
}
