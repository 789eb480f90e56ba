package repository

import (
	"context"
	"fmt"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	// CRUD operations
	Create(ctx context.Context, artist *models.Artist, genres []string) error
	Update(ctx context.Context, artist *models.Artist, genres []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	Count(ctx context.Context) (int64, error)

	SearchByName(ctx context.Context, term string) ([]models.Artist, error)

	// Related records
	Genres(ctx context.Context, id uint) ([]string, error)
	Shows(ctx context.Context, id uint) ([]models.Show, error)
}

// artistColumns are the descriptive fields an edit replaces.
var artistColumns = []string{
	"Name", "City", "State", "Phone", "ImageLink",
	"FacebookLink", "Website", "SeekingVenue", "SeekingDescription",
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func newArtistGenre(id uint) func(string) models.ArtistGenre {
	return func(genre string) models.ArtistGenre {
		return models.ArtistGenre{ArtistID: id, Genre: genre}
	}
}

// Create inserts the artist and its genres in one transaction.
func (r *artistRepository) Create(ctx context.Context, artist *models.Artist, genres []string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Shows").Create(artist).Error; err != nil {
			return fmt.Errorf("insert artist: %w", translateError(err))
		}
		return reconcileGenres(tx, "artist_id", artist.ID, genres, newArtistGenre(artist.ID))
	})
	if err != nil {
		artist.ID = 0
		return err
	}
	return nil
}

// Update replaces the artist's descriptive fields and reconciles its genres
// in one transaction.
func (r *artistRepository) Update(ctx context.Context, artist *models.Artist, genres []string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.First(&existing, artist.ID).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Model(&existing).Select(artistColumns).Updates(artist).Error; err != nil {
			return fmt.Errorf("update artist: %w", translateError(err))
		}
		return reconcileGenres(tx, "artist_id", artist.ID, genres, newArtistGenre(artist.ID))
	})
}

// Delete removes an artist and its genres. Artists with booked shows are kept
// and ErrConflict is returned.
func (r *artistRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.Select("id").First(&artist, id).Error; err != nil {
			return translateError(err)
		}

		var shows int64
		if err := tx.Model(&models.Show{}).Where("artist_id = ?", id).Count(&shows).Error; err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("%w: artist %d has %d shows", ErrConflict, id, shows)
		}

		if err := tx.Where("artist_id = ?", id).Delete(&models.ArtistGenre{}).Error; err != nil {
			return fmt.Errorf("delete artist genres: %w", translateError(err))
		}
		if err := tx.Delete(&models.Artist{}, id).Error; err != nil {
			return fmt.Errorf("delete artist: %w", translateError(err))
		}
		return nil
	})
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &artist, nil
}

// FindAll returns every artist with its shows loaded, ordered by id.
func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Preload("Shows").Order("id").Find(&artists).Error
	return artists, err
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&total).Error
	return total, err
}

// SearchByName returns artists whose name contains term, ignoring case, with
// their shows loaded.
func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where(nameContainsClause, containsPattern(term)).
		Order("id").
		Find(&artists).Error
	return artists, err
}

func (r *artistRepository) Genres(ctx context.Context, id uint) ([]string, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	genres := []string{}
	err := r.db.WithContext(ctx).Model(&models.ArtistGenre{}).
		Where("artist_id = ?", id).
		Order("genre").
		Pluck("genre", &genres).Error
	return genres, err
}

// Shows returns the artist's shows with their venues loaded.
func (r *artistRepository) Shows(ctx context.Context, id uint) ([]models.Show, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", id).
		Order("id").
		Find(&shows).Error
	return shows, err
}
