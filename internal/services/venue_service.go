package services

import (
	"context"
	"fmt"
	"time"

	"booking-backend/internal/models"
	"booking-backend/internal/projection"
	"booking-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	// Read operations
	ListAreas(ctx context.Context) ([]projection.Area, error)
	Search(ctx context.Context, term string) (projection.SearchResult[projection.VenueSummary], error)
	GetDetail(ctx context.Context, id uint) (*projection.VenueDetail, error)
	GetForm(ctx context.Context, id uint) (*models.VenueForm, error)

	// Write operations
	CreateVenue(ctx context.Context, form models.VenueForm) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, form models.VenueForm) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo   repository.VenueRepository
	images ImageStore
	logger *logrus.Logger
	now    func() time.Time
}

func NewVenueService(repo repository.VenueRepository, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *venueService) SetImageStore(images ImageStore) {
	s.images = images
}

func (s *venueService) ListAreas(ctx context.Context) ([]projection.Area, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return projection.GroupVenuesByArea(venues, s.now()), nil
}

func (s *venueService) Search(ctx context.Context, term string) (projection.SearchResult[projection.VenueSummary], error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return projection.SearchResult[projection.VenueSummary]{}, fmt.Errorf("failed to search venues: %w", err)
	}
	return projection.NewSearchResult(projection.SummarizeVenues(venues, s.now())), nil
}

func (s *venueService) GetDetail(ctx context.Context, id uint) (*projection.VenueDetail, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.Genres(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue genres: %w", err)
	}
	shows, err := s.repo.Shows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue shows: %w", err)
	}

	detail := projection.BuildVenueDetail(*venue, genres, shows, s.now())
	return &detail, nil
}

func (s *venueService) GetForm(ctx context.Context, id uint) (*models.VenueForm, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.Genres(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue genres: %w", err)
	}

	form := models.NewVenueForm(venue, genres)
	return &form, nil
}

func (s *venueService) CreateVenue(ctx context.Context, form models.VenueForm) (*models.Venue, error) {
	form.Normalize()
	if result := Validate(form); !result.OK() {
		return nil, &ValidationError{Result: result}
	}

	venue := form.Venue()
	if err := s.repo.Create(ctx, venue, form.Genres); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
		"genres":   len(form.Genres),
	}).Info("Venue listed")
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, form models.VenueForm) (*models.Venue, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Normalize()
	if result := Validate(form); !result.OK() {
		return nil, &ValidationError{Result: result}
	}

	venue := form.Venue()
	venue.ID = id
	venue.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, venue, form.Genres); err != nil {
		return nil, err
	}

	if existing.ImageLink != venue.ImageLink {
		s.removeImage(ctx, existing.ImageLink)
	}
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(ctx, existing.ImageLink)
	s.logger.WithField("venue_id", id).Info("Venue deleted")
	return nil
}

// removeImage deletes an uploaded image that is no longer referenced.
// Failures are logged; the record change has already been committed.
func (s *venueService) removeImage(ctx context.Context, link string) {
	if s.images == nil || !s.images.Owns(link) {
		return
	}
	if err := s.images.DeleteByURL(ctx, link); err != nil {
		s.logger.WithError(err).WithField("image_link", link).Warn("Failed to delete venue image")
	}
}
