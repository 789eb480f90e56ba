package projection

import "booking-backend/internal/models"

type ShowListItem struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ListShows flattens shows with their venue and artist loaded.
func ListShows(shows []models.Show) []ShowListItem {
	out := make([]ShowListItem, 0, len(shows))
	for _, s := range shows {
		item := ShowListItem{
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: FormatDateTime(s.StartTime, Medium),
		}
		if s.Venue != nil {
			item.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			item.ArtistName = s.Artist.Name
			item.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, item)
	}
	return out
}
