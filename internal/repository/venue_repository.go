package repository

import (
	"context"
	"fmt"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/models"

	"gorm.io/gorm"
)

type VenueRepository interface {
	// CRUD operations
	Create(ctx context.Context, venue *models.Venue, genres []string) error
	Update(ctx context.Context, venue *models.Venue, genres []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	Count(ctx context.Context) (int64, error)

	SearchByName(ctx context.Context, term string) ([]models.Venue, error)

	// Related records
	Genres(ctx context.Context, id uint) ([]string, error)
	Shows(ctx context.Context, id uint) ([]models.Show, error)
}

// venueColumns are the descriptive fields an edit replaces.
var venueColumns = []string{
	"Name", "City", "State", "Address", "Phone", "ImageLink",
	"FacebookLink", "Website", "SeekingTalent", "SeekingDescription",
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func newVenueGenre(id uint) func(string) models.VenueGenre {
	return func(genre string) models.VenueGenre {
		return models.VenueGenre{VenueID: id, Genre: genre}
	}
}

// Create inserts the venue and its genres in one transaction.
func (r *venueRepository) Create(ctx context.Context, venue *models.Venue, genres []string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Shows").Create(venue).Error; err != nil {
			return fmt.Errorf("insert venue: %w", translateError(err))
		}
		return reconcileGenres(tx, "venue_id", venue.ID, genres, newVenueGenre(venue.ID))
	})
	if err != nil {
		venue.ID = 0
		return err
	}
	return nil
}

// Update replaces the venue's descriptive fields and reconciles its genres
// in one transaction.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue, genres []string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.First(&existing, venue.ID).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Model(&existing).Select(venueColumns).Updates(venue).Error; err != nil {
			return fmt.Errorf("update venue: %w", translateError(err))
		}
		return reconcileGenres(tx, "venue_id", venue.ID, genres, newVenueGenre(venue.ID))
	})
}

// Delete removes a venue and its genres. Venues with booked shows are kept
// and ErrConflict is returned.
func (r *venueRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.Select("id").First(&venue, id).Error; err != nil {
			return translateError(err)
		}

		var shows int64
		if err := tx.Model(&models.Show{}).Where("venue_id = ?", id).Count(&shows).Error; err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("%w: venue %d has %d shows", ErrConflict, id, shows)
		}

		if err := tx.Where("venue_id = ?", id).Delete(&models.VenueGenre{}).Error; err != nil {
			return fmt.Errorf("delete venue genres: %w", translateError(err))
		}
		if err := tx.Delete(&models.Venue{}, id).Error; err != nil {
			return fmt.Errorf("delete venue: %w", translateError(err))
		}
		return nil
	})
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &venue, nil
}

// FindAll returns every venue with its shows loaded, ordered by id.
func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Preload("Shows").Order("id").Find(&venues).Error
	return venues, err
}

func (r *venueRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Venue{}).Count(&total).Error
	return total, err
}

// SearchByName returns venues whose name contains term, ignoring case, with
// their shows loaded.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows").
		Where(nameContainsClause, containsPattern(term)).
		Order("id").
		Find(&venues).Error
	return venues, err
}

func (r *venueRepository) Genres(ctx context.Context, id uint) ([]string, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	genres := []string{}
	err := r.db.WithContext(ctx).Model(&models.VenueGenre{}).
		Where("venue_id = ?", id).
		Order("genre").
		Pluck("genre", &genres).Error
	return genres, err
}

// Shows returns the venue's shows with their artists loaded.
func (r *venueRepository) Shows(ctx context.Context, id uint) ([]models.Show, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", id).
		Order("id").
		Find(&shows).Error
	return shows, err
}
