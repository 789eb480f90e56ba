package projection

import (
	"time"

	"booking-backend/internal/models"
)

type ArtistSummary struct {
	ID   uint   `json:"id" example:"4"`
	Name string `json:"name" example:"Guns N Petals"`
}

type ArtistSearchSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ShowWithVenue struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetail struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription string          `json:"seeking_description"`
	ImageLink          string          `json:"image_link"`
	PastShows          []ShowWithVenue `json:"past_shows"`
	UpcomingShows      []ShowWithVenue `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

func SummarizeArtists(artists []models.Artist) []ArtistSummary {
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out
}

// SummarizeArtistSearch counts each artist's upcoming shows at ref. The
// artists' Shows must be loaded.
func SummarizeArtistSearch(artists []models.Artist, ref time.Time) []ArtistSearchSummary {
	out := make([]ArtistSearchSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSearchSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: CountUpcoming(a.Shows, ref),
		})
	}
	return out
}

// BuildArtistDetail merges an artist with its genres and its shows split at
// ref. Each show's Venue should be loaded.
func BuildArtistDetail(a models.Artist, genres []string, shows []models.Show, ref time.Time) ArtistDetail {
	past, upcoming := Partition(shows, ref)
	if genres == nil {
		genres = []string{}
	}
	return ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          showsWithVenue(past),
		UpcomingShows:      showsWithVenue(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func showsWithVenue(shows []models.Show) []ShowWithVenue {
	out := make([]ShowWithVenue, 0, len(shows))
	for _, s := range shows {
		item := ShowWithVenue{
			VenueID:   s.VenueID,
			StartTime: FormatDateTime(s.StartTime, Medium),
		}
		if s.Venue != nil {
			item.VenueName = s.Venue.Name
			item.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, item)
	}
	return out
}
