package routes

import (
	"booking-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers collects the request handlers mounted by Setup. Upload is nil when
// image storage is disabled.
type Handlers struct {
	Home   *handlers.HomeHandler
	Venue  *handlers.VenueHandler
	Artist *handlers.ArtistHandler
	Show   *handlers.ShowHandler
	Upload *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/", h.Home.GetHome)

	// Static paths are registered before /:id so they are not captured by it.
	venues := v1.Group("/venues")
	{
		venues.Get("/", h.Venue.GetVenues)
		venues.Get("/search", h.Venue.SearchVenues)
		venues.Post("/search", h.Venue.SearchVenues)
		venues.Get("/create", h.Venue.GetCreateVenueForm)
		venues.Post("/create", h.Venue.CreateVenue)
		venues.Get("/:id", h.Venue.GetVenue)
		venues.Delete("/:id", h.Venue.DeleteVenue)
		venues.Get("/:id/edit", h.Venue.GetEditVenueForm)
		venues.Post("/:id/edit", h.Venue.UpdateVenue)
	}

	artists := v1.Group("/artists")
	{
		artists.Get("/", h.Artist.GetArtists)
		artists.Get("/search", h.Artist.SearchArtists)
		artists.Post("/search", h.Artist.SearchArtists)
		artists.Get("/create", h.Artist.GetCreateArtistForm)
		artists.Post("/create", h.Artist.CreateArtist)
		artists.Get("/:id", h.Artist.GetArtist)
		artists.Delete("/:id", h.Artist.DeleteArtist)
		artists.Get("/:id/edit", h.Artist.GetEditArtistForm)
		artists.Post("/:id/edit", h.Artist.UpdateArtist)
	}

	shows := v1.Group("/shows")
	{
		shows.Get("/", h.Show.GetShows)
		shows.Get("/create", h.Show.GetCreateShowForm)
		shows.Post("/create", h.Show.CreateShow)
	}

	if h.Upload != nil {
		upload := v1.Group("/upload")
		{
			upload.Get("/presign", h.Upload.GetPresignedURL)
		}
	}
}
