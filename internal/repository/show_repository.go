package repository

import (
	"context"
	"fmt"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	Count(ctx context.Context) (int64, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

// Create books a show. The artist and venue must already exist; otherwise
// ErrMissingReference is returned and nothing is written.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := exists(tx, &models.Artist{}, show.ArtistID); err != nil {
			return fmt.Errorf("artist %d: %w", show.ArtistID, err)
		}
		if err := exists(tx, &models.Venue{}, show.VenueID); err != nil {
			return fmt.Errorf("venue %d: %w", show.VenueID, err)
		}
		if err := tx.Omit("Artist", "Venue").Create(show).Error; err != nil {
			return fmt.Errorf("insert show: %w", translateError(err))
		}
		return nil
	})
}

func exists(tx *gorm.DB, model any, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrMissingReference
	}
	return nil
}

// FindAll returns every show with its artist and venue loaded, soonest
// first and unscheduled shows last.
func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("CASE WHEN start_time IS NULL THEN 1 ELSE 0 END, start_time, id").
		Find(&shows).Error
	return shows, err
}

func (r *showRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Show{}).Count(&total).Error
	return total, err
}
