package services

import (
	"context"
	"testing"

	"booking-backend/internal/models"
	"booking-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hop := f.venue(t, "The Musical Hop", "San Francisco", "CA")
	petals := f.artist(t, "Guns N Petals")

	scheduled := f.show(t, petals.ID, hop.ID, " 2035-04-01T20:00 ")
	require.NotNil(t, scheduled.StartTime)
	assert.Equal(t, 2035, scheduled.StartTime.Year())

	open := f.show(t, petals.ID, hop.ID, "")
	assert.Nil(t, open.StartTime)

	list, err := f.shows.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "The Musical Hop", list[0].VenueName)
	assert.Equal(t, "Guns N Petals", list[0].ArtistName)
	assert.NotEmpty(t, list[0].StartTime)
	assert.Empty(t, list[1].StartTime)
}

func TestCreateShowRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hop := f.venue(t, "The Musical Hop", "San Francisco", "CA")

	_, err := f.shows.CreateShow(ctx, models.ShowForm{ArtistID: 99, VenueID: hop.ID, StartTime: "2035-04-01 20:00:00"})
	assert.ErrorIs(t, err, repository.ErrMissingReference)

	_, err = f.shows.CreateShow(ctx, models.ShowForm{VenueID: hop.ID, StartTime: "next tuesday"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	rules := map[string]string{}
	for _, fe := range verr.Result.Errors {
		rules[fe.Field] = fe.Rule
	}
	assert.Equal(t, map[string]string{"artist_id": "required", "start_time": "datetime_any"}, rules)

	list, err := f.shows.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDirectoryStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hop := f.venue(t, "The Musical Hop", "San Francisco", "CA")
	f.venue(t, "Park Square", "San Francisco", "CA")
	petals := f.artist(t, "Guns N Petals")
	f.show(t, petals.ID, hop.ID, "")

	svc := NewDirectoryService(
		repository.NewVenueRepository(f.db),
		repository.NewArtistRepository(f.db),
		repository.NewShowRepository(f.db),
	)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, DirectoryStats{Venues: 2, Artists: 1, Shows: 1}, *stats)
}

func TestValidateMessages(t *testing.T) {
	result := Validate(models.ShowForm{ArtistID: 1, VenueID: 1, StartTime: "2035-04-01 20:00:00"})
	assert.True(t, result.OK())

	result = Validate(models.ArtistForm{City: "Austin", State: "TX", Genres: []string{"Jazz"}})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, FieldError{Field: "name", Rule: "required", Message: "name is required"}, result.Errors[0])

	err := &ValidationError{Result: result}
	assert.Equal(t, "validation failed: name is required", err.Error())
}
