package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"booking-backend/internal/database/dbtest"
	"booking-backend/internal/handlers"
	"booking-backend/internal/repository"
	"booking-backend/internal/routes"
	"booking-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fakePresigner struct {
	err error
}

func (f fakePresigner) GeneratePresignedURL(_ context.Context, folder, filename string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "http://minio.local/put/" + folder + "/" + filename, "http://minio.local/booking-images/" + folder + "/" + filename, nil
}

func newApp(t *testing.T, presigner handlers.ImagePresigner) *fiber.App {
	t.Helper()
	db := dbtest.New(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	h := routes.Handlers{
		Home:   handlers.NewHomeHandler(services.NewDirectoryService(venueRepo, artistRepo, showRepo), logger),
		Venue:  handlers.NewVenueHandler(services.NewVenueService(venueRepo, logger), logger),
		Artist: handlers.NewArtistHandler(services.NewArtistService(artistRepo, logger), logger),
		Show:   handlers.NewShowHandler(services.NewShowService(showRepo, logger), logger),
	}
	if presigner != nil {
		h.Upload = handlers.NewUploadHandler(presigner, logger)
	}

	app := fiber.New()
	routes.Setup(app, h)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func postJSON(path string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func get(path string) *http.Request {
	return httptest.NewRequest(fiber.MethodGet, path, nil)
}

func createVenue(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()
	code, body := do(t, app, postForm("/api/v1/venues/create", url.Values{
		"name":    {name},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz", "Reggae"},
	}))
	require.Equal(t, fiber.StatusCreated, code, body.Message)

	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &v))
	return v.ID
}

func createArtist(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()
	code, body := do(t, app, postJSON("/api/v1/artists/create", map[string]any{
		"name":   name,
		"city":   "San Francisco",
		"state":  "CA",
		"genres": []string{"Rock n Roll"},
	}))
	require.Equal(t, fiber.StatusCreated, code, body.Message)

	var a struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &a))
	return a.ID
}

func TestCreateVenueFromForm(t *testing.T) {
	app := newApp(t, nil)

	code, body := do(t, app, postForm("/api/v1/venues/create", url.Values{
		"name":                {"The Blue Note"},
		"city":                {"New York"},
		"state":               {"NY"},
		"address":             {"131 W 3rd St"},
		"genres":              {"Jazz", "Blues"},
		"seeking_talent":      {"n"},
		"seeking_description": {"Looking for a trio"},
	}))
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "Venue The Blue Note was successfully listed!", body.Message)

	var venue struct {
		ID                 uint   `json:"id"`
		SeekingTalent      bool   `json:"seeking_talent"`
		SeekingDescription string `json:"seeking_description"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &venue))
	assert.False(t, venue.SeekingTalent)
	assert.Empty(t, venue.SeekingDescription)

	code, body = do(t, app, get("/api/v1/venues"))
	require.Equal(t, fiber.StatusOK, code)
	var areas []struct {
		City   string `json:"city"`
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &areas))
	require.Len(t, areas, 1)
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "The Blue Note", areas[0].Venues[0].Name)
}

func TestCreateVenueValidationFailure(t *testing.T) {
	app := newApp(t, nil)

	code, body := do(t, app, postJSON("/api/v1/venues/create", map[string]any{
		"name":  "Nowhere",
		"city":  "Austin",
		"state": "TX",
	}))
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Venue Nowhere was not listed due to an error!", body.Message)

	var result services.ValidationResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	fields := map[string]bool{}
	for _, fe := range result.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["address"])
	assert.True(t, fields["genres"])

	code, _ = do(t, app, get("/api/v1/venues/1"))
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestGetVenue(t *testing.T) {
	app := newApp(t, nil)
	id := createVenue(t, app, "The Musical Hop")

	code, body := do(t, app, get("/api/v1/venues/abc"))
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid venue ID", body.Message)

	code, body = do(t, app, get("/api/v1/venues/999"))
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Venue not found", body.Message)

	code, body = do(t, app, get("/api/v1/venues/"+itoa(id)))
	require.Equal(t, fiber.StatusOK, code)
	var detail struct {
		Name          string   `json:"name"`
		Genres        []string `json:"genres"`
		UpcomingShows []any    `json:"upcoming_shows"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, detail.Genres)
	assert.NotNil(t, detail.UpcomingShows)

	code, body = do(t, app, get("/api/v1/venues/create"))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Venue form", body.Message)
}

func TestSearchVenues(t *testing.T) {
	app := newApp(t, nil)
	createVenue(t, app, "The Musical Hop")
	createVenue(t, app, "The Dueling Pianos Bar")
	createVenue(t, app, "Park Square Live Music & Coffee")

	type result struct {
		Count int `json:"count"`
		Data  []struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	code, body := do(t, app, get("/api/v1/venues/search?search_term=Music"))
	require.Equal(t, fiber.StatusOK, code)
	var r result
	require.NoError(t, json.Unmarshal(body.Data, &r))
	assert.Equal(t, 2, r.Count)
	assert.Len(t, r.Data, 2)

	code, body = do(t, app, postForm("/api/v1/venues/search", url.Values{"search_term": {"hop"}}))
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(body.Data, &r))
	require.Equal(t, 1, r.Count)
	assert.Equal(t, "The Musical Hop", r.Data[0].Name)
}

func TestEditVenue(t *testing.T) {
	app := newApp(t, nil)
	id := createVenue(t, app, "The Musical Hop")

	code, body := do(t, app, get("/api/v1/venues/"+itoa(id)+"/edit"))
	require.Equal(t, fiber.StatusOK, code)
	var form map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &form))
	assert.Equal(t, "The Musical Hop", form["name"])
	assert.Equal(t, "n", form["seeking_talent"])

	code, body = do(t, app, postForm("/api/v1/venues/"+itoa(id)+"/edit", url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"genres":              {"Jazz", "Swing"},
		"seeking_talent":      {"y"},
		"seeking_description": {"Local artists welcome"},
	}))
	require.Equal(t, fiber.StatusOK, code, body.Message)
	assert.Equal(t, "Venue The Musical Hop was successfully updated!", body.Message)

	code, body = do(t, app, postForm("/api/v1/venues/999/edit", url.Values{"name": {"Ghost"}}))
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Venue not found", body.Message)
}

func TestDeleteVenueBlockedByShows(t *testing.T) {
	app := newApp(t, nil)
	busy := createVenue(t, app, "The Musical Hop")
	quiet := createVenue(t, app, "Quiet Room")
	artist := createArtist(t, app, "Guns N Petals")

	code, _ := do(t, app, postJSON("/api/v1/shows/create", map[string]any{
		"artist_id": artist, "venue_id": busy, "start_time": "2035-04-01 20:00:00",
	}))
	require.Equal(t, fiber.StatusCreated, code)

	code, body := do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/v1/venues/"+itoa(busy), nil))
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "Venue still has shows and cannot be deleted", body.Message)

	code, _ = do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/v1/venues/"+itoa(quiet), nil))
	assert.Equal(t, fiber.StatusOK, code)

	code, _ = do(t, app, get("/api/v1/venues/"+itoa(quiet)))
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _ = do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/v1/venues/"+itoa(quiet), nil))
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestArtistRoutes(t *testing.T) {
	app := newApp(t, nil)
	id := createArtist(t, app, "Guns N Petals")
	createArtist(t, app, "Matt Quevado")

	code, body := do(t, app, get("/api/v1/artists"))
	require.Equal(t, fiber.StatusOK, code)
	var list []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Len(t, list, 2)

	code, body = do(t, app, postJSON("/api/v1/artists/search", map[string]string{"search_term": "petal"}))
	require.Equal(t, fiber.StatusOK, code)
	var r struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &r))
	assert.Equal(t, 1, r.Count)

	code, _ = do(t, app, get("/api/v1/artists/"+itoa(id)))
	assert.Equal(t, fiber.StatusOK, code)

	code, body = do(t, app, postJSON("/api/v1/artists/create", map[string]any{
		"name": "Broken Link", "city": "Austin", "state": "TX", "genres": []string{"Folk"},
		"facebook_link": "facebook",
	}))
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Artist Broken Link was not listed due to an error!", body.Message)

	code, _ = do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/v1/artists/"+itoa(id), nil))
	assert.Equal(t, fiber.StatusOK, code)
}

func TestShowRoutes(t *testing.T) {
	app := newApp(t, nil)
	venue := createVenue(t, app, "The Musical Hop")
	artist := createArtist(t, app, "Guns N Petals")

	code, body := do(t, app, postForm("/api/v1/shows/create", url.Values{
		"artist_id":  {itoa(artist)},
		"venue_id":   {itoa(venue)},
		"start_time": {"2035-04-01 20:00:00"},
	}))
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "Show was successfully listed!", body.Message)

	code, body = do(t, app, postJSON("/api/v1/shows/create", map[string]any{"artist_id": 999, "venue_id": venue}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "Show was not listed due to an error!", body.Message)

	code, _ = do(t, app, postJSON("/api/v1/shows/create", map[string]any{"artist_id": artist, "venue_id": venue, "start_time": "soon"}))
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = do(t, app, get("/api/v1/shows"))
	require.Equal(t, fiber.StatusOK, code)
	var shows []struct {
		VenueName  string `json:"venue_name"`
		ArtistName string `json:"artist_name"`
		StartTime  string `json:"start_time"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &shows))
	require.Len(t, shows, 1)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", shows[0].StartTime)

	code, body = do(t, app, get("/api/v1/"))
	require.Equal(t, fiber.StatusOK, code)
	var stats services.DirectoryStats
	require.NoError(t, json.Unmarshal(body.Data, &stats))
	assert.Equal(t, services.DirectoryStats{Venues: 1, Artists: 1, Shows: 1}, stats)
}

func TestUploadPresign(t *testing.T) {
	app := newApp(t, fakePresigner{})

	code, body := do(t, app, get("/api/v1/upload/presign?folder=venues&filename=hop.jpg"))
	require.Equal(t, fiber.StatusOK, code)
	var urls map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &urls))
	assert.Equal(t, "http://minio.local/booking-images/venues/hop.jpg", urls["public_url"])

	code, _ = do(t, app, get("/api/v1/upload/presign?folder=shows&filename=hop.jpg"))
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _ = do(t, app, get("/api/v1/upload/presign?folder=artists"))
	assert.Equal(t, fiber.StatusBadRequest, code)

	failing := newApp(t, fakePresigner{err: errors.New("bucket offline")})
	code, body = do(t, failing, get("/api/v1/upload/presign?folder=artists&filename=band.png"))
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "fail", body.Status)
}

func TestUploadRoutesAbsentWithoutImageStore(t *testing.T) {
	app := newApp(t, nil)

	resp, err := app.Test(get("/api/v1/upload/presign?folder=venues&filename=hop.jpg"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
