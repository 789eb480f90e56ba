package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"booking-backend/internal/database"
	"booking-backend/internal/database/dbtest"
	"booking-backend/internal/models"
	"booking-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2030, time.June, 15, 18, 0, 0, 0, time.UTC)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeImageStore owns every link under its prefix and records deletions.
type fakeImageStore struct {
	mu      sync.Mutex
	prefix  string
	deleted []string
}

func (f *fakeImageStore) Owns(link string) bool {
	return strings.HasPrefix(link, f.prefix)
}

func (f *fakeImageStore) DeleteByURL(_ context.Context, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, link)
	return nil
}

type fixture struct {
	db      *database.Database
	venues  *venueService
	artists *artistService
	shows   ShowService
	images  *fakeImageStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	logger := testLogger()
	images := &fakeImageStore{prefix: "http://localhost:9000/booking-images/"}

	venues := NewVenueService(repository.NewVenueRepository(db), logger).(*venueService)
	venues.now = func() time.Time { return testNow }
	venues.SetImageStore(images)

	artists := NewArtistService(repository.NewArtistRepository(db), logger).(*artistService)
	artists.now = func() time.Time { return testNow }
	artists.SetImageStore(images)

	return &fixture{
		db:      db,
		venues:  venues,
		artists: artists,
		shows:   NewShowService(repository.NewShowRepository(db), logger),
		images:  images,
	}
}

func (f *fixture) venue(t *testing.T, name, city, state string) *models.Venue {
	t.Helper()
	v, err := f.venues.CreateVenue(context.Background(), models.VenueForm{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1 Main St",
		Genres:  []string{"Jazz"},
	})
	require.NoError(t, err)
	return v
}

func (f *fixture) artist(t *testing.T, name string) *models.Artist {
	t.Helper()
	a, err := f.artists.CreateArtist(context.Background(), models.ArtistForm{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) show(t *testing.T, artistID, venueID uint, start string) *models.Show {
	t.Helper()
	s, err := f.shows.CreateShow(context.Background(), models.ShowForm{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: start,
	})
	require.NoError(t, err)
	return s
}
