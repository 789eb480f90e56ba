package projection

import (
	"time"

	"booking-backend/internal/models"
)

type VenueSummary struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"The Musical Hop"`
	NumUpcomingShows int    `json:"num_upcoming_shows" example:"0"`
}

// Area is every venue sharing one (city, state) pair.
type Area struct {
	City   string         `json:"city" example:"San Francisco"`
	State  string         `json:"state" example:"CA"`
	Venues []VenueSummary `json:"venues"`
}

type ShowWithArtist struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []ShowWithArtist `json:"past_shows"`
	UpcomingShows      []ShowWithArtist `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// SummarizeVenue counts the venue's upcoming shows at ref. The venue's Shows
// must be loaded.
func SummarizeVenue(v models.Venue, ref time.Time) VenueSummary {
	return VenueSummary{
		ID:               v.ID,
		Name:             v.Name,
		NumUpcomingShows: CountUpcoming(v.Shows, ref),
	}
}

func SummarizeVenues(venues []models.Venue, ref time.Time) []VenueSummary {
	out := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		out = append(out, SummarizeVenue(v, ref))
	}
	return out
}

// GroupVenuesByArea groups venues by (city, state). Areas come out in the
// order their first venue appears in the input, and venues keep their input
// order inside each area.
func GroupVenuesByArea(venues []models.Venue, ref time.Time) []Area {
	type key struct{ city, state string }

	index := make(map[key]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []VenueSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, SummarizeVenue(v, ref))
	}
	return areas
}

// BuildVenueDetail merges a venue with its genres and its shows split at
// ref. Each show's Artist should be loaded.
func BuildVenueDetail(v models.Venue, genres []string, shows []models.Show, ref time.Time) VenueDetail {
	past, upcoming := Partition(shows, ref)
	if genres == nil {
		genres = []string{}
	}
	return VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          showsWithArtist(past),
		UpcomingShows:      showsWithArtist(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func showsWithArtist(shows []models.Show) []ShowWithArtist {
	out := make([]ShowWithArtist, 0, len(shows))
	for _, s := range shows {
		item := ShowWithArtist{
			ArtistID:  s.ArtistID,
			StartTime: FormatDateTime(s.StartTime, Medium),
		}
		if s.Artist != nil {
			item.ArtistName = s.Artist.Name
			item.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, item)
	}
	return out
}
