package services

import (
	"context"
	"fmt"

	"booking-backend/internal/repository"
)

// DirectoryStats is what the home page shows about the directory.
type DirectoryStats struct {
	Venues  int64 `json:"venues" example:"3"`
	Artists int64 `json:"artists" example:"3"`
	Shows   int64 `json:"shows" example:"5"`
}

type DirectoryService interface {
	Stats(ctx context.Context) (*DirectoryStats, error)
}

type directoryService struct {
	venues  repository.VenueRepository
	artists repository.ArtistRepository
	shows   repository.ShowRepository
}

func NewDirectoryService(venues repository.VenueRepository, artists repository.ArtistRepository, shows repository.ShowRepository) DirectoryService {
	return &directoryService{venues: venues, artists: artists, shows: shows}
}

func (s *directoryService) Stats(ctx context.Context) (*DirectoryStats, error) {
	var stats DirectoryStats
	var err error

	if stats.Venues, err = s.venues.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}
	if stats.Artists, err = s.artists.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count artists: %w", err)
	}
	if stats.Shows, err = s.shows.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count shows: %w", err)
	}
	return &stats, nil
}
