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

type ArtistService interface {
	// Read operations
	ListArtists(ctx context.Context) ([]projection.ArtistSummary, error)
	Search(ctx context.Context, term string) (projection.SearchResult[projection.ArtistSearchSummary], error)
	GetDetail(ctx context.Context, id uint) (*projection.ArtistDetail, error)
	GetForm(ctx context.Context, id uint) (*models.ArtistForm, error)

	// Write operations
	CreateArtist(ctx context.Context, form models.ArtistForm) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, form models.ArtistForm) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
}

type artistService struct {
	repo   repository.ArtistRepository
	images ImageStore
	logger *logrus.Logger
	now    func() time.Time
}

func NewArtistService(repo repository.ArtistRepository, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *artistService) SetImageStore(images ImageStore) {
	s.images = images
}

func (s *artistService) ListArtists(ctx context.Context) ([]projection.ArtistSummary, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return projection.SummarizeArtists(artists), nil
}

func (s *artistService) Search(ctx context.Context, term string) (projection.SearchResult[projection.ArtistSearchSummary], error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return projection.SearchResult[projection.ArtistSearchSummary]{}, fmt.Errorf("failed to search artists: %w", err)
	}
	return projection.NewSearchResult(projection.SummarizeArtistSearch(artists, s.now())), nil
}

func (s *artistService) GetDetail(ctx context.Context, id uint) (*projection.ArtistDetail, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.Genres(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist genres: %w", err)
	}
	shows, err := s.repo.Shows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist shows: %w", err)
	}

	detail := projection.BuildArtistDetail(*artist, genres, shows, s.now())
	return &detail, nil
}

func (s *artistService) GetForm(ctx context.Context, id uint) (*models.ArtistForm, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.Genres(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist genres: %w", err)
	}

	form := models.NewArtistForm(artist, genres)
	return &form, nil
}

func (s *artistService) CreateArtist(ctx context.Context, form models.ArtistForm) (*models.Artist, error) {
	form.Normalize()
	if result := Validate(form); !result.OK() {
		return nil, &ValidationError{Result: result}
	}

	artist := form.Artist()
	if err := s.repo.Create(ctx, artist, form.Genres); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
		"genres":    len(form.Genres),
	}).Info("Artist listed")
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, form models.ArtistForm) (*models.Artist, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Normalize()
	if result := Validate(form); !result.OK() {
		return nil, &ValidationError{Result: result}
	}

	artist := form.Artist()
	artist.ID = id
	artist.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, artist, form.Genres); err != nil {
		return nil, err
	}

	if existing.ImageLink != artist.ImageLink {
		s.removeImage(ctx, existing.ImageLink)
	}
	return artist, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(ctx, existing.ImageLink)
	s.logger.WithField("artist_id", id).Info("Artist deleted")
	return nil
}

// removeImage deletes an uploaded image that is no longer referenced.
// Failures are logged; the record change has already been committed.
func (s *artistService) removeImage(ctx context.Context, link string) {
	if s.images == nil || !s.images.Owns(link) {
		return
	}
	if err := s.images.DeleteByURL(ctx, link); err != nil {
		s.logger.WithError(err).WithField("image_link", link).Warn("Failed to delete artist image")
	}
}
