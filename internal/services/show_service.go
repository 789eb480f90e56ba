package services

import (
	"context"
	"fmt"
	"strings"

	"booking-backend/internal/models"
	"booking-backend/internal/projection"
	"booking-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]projection.ShowListItem, error)
	CreateShow(ctx context.Context, form models.ShowForm) (*models.Show, error)
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]projection.ShowListItem, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return projection.ListShows(shows), nil
}

func (s *showService) CreateShow(ctx context.Context, form models.ShowForm) (*models.Show, error) {
	form.StartTime = strings.TrimSpace(form.StartTime)
	if result := Validate(form); !result.OK() {
		return nil, &ValidationError{Result: result}
	}

	show := &models.Show{
		ArtistID: form.ArtistID,
		VenueID:  form.VenueID,
	}
	if form.StartTime != "" {
		start, err := projection.ParseDateTime(form.StartTime)
		if err != nil {
			return nil, err
		}
		show.StartTime = &start
	}

	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"show_id":   show.ID,
		"artist_id": show.ArtistID,
		"venue_id":  show.VenueID,
	}).Info("Show listed")
	return show, nil
}
