package models

import (
	"strings"
)

// VenueForm is the submission accepted by the venue create and edit
// endpoints. It binds from both JSON bodies and url-encoded forms.
type VenueForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255" example:"The Blue Note"`
	City               string   `json:"city" form:"city" validate:"required,max=120" example:"New York"`
	State              string   `json:"state" form:"state" validate:"required,max=120" example:"NY"`
	Address            string   `json:"address" form:"address" validate:"required,max=120" example:"131 W 3rd St"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120,phone" example:"212-475-8592"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,required,max=100" example:"Jazz,Blues"`
	SeekingTalent      string   `json:"seeking_talent" form:"seeking_talent" example:"y"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=100"`
}

// ArtistForm is the submission accepted by the artist create and edit
// endpoints.
type ArtistForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255" example:"Guns N Petals"`
	City               string   `json:"city" form:"city" validate:"required,max=120" example:"San Francisco"`
	State              string   `json:"state" form:"state" validate:"required,max=120" example:"CA"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,max=120,phone" example:"326-123-5000"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,required,max=100" example:"Rock n Roll"`
	SeekingVenue       string   `json:"seeking_venue" form:"seeking_venue" example:"n"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=100"`
}

// ShowForm is the submission accepted by the show create endpoint.
// StartTime may be empty for an unscheduled show.
type ShowForm struct {
	ArtistID  uint   `json:"artist_id" form:"artist_id" validate:"required,gt=0" example:"4"`
	VenueID   uint   `json:"venue_id" form:"venue_id" validate:"required,gt=0" example:"1"`
	StartTime string `json:"start_time" form:"start_time" validate:"omitempty,datetime_any" example:"2035-04-01 20:00:00"`
}

// SearchForm carries the search term for the venue and artist searches.
type SearchForm struct {
	SearchTerm string `json:"search_term" form:"search_term" query:"search_term"`
}

// IsChecked reports whether a checkbox-style form value is set.
func IsChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}

// Normalize trims surrounding whitespace and collapses genres into an
// ordered set.
func (f *VenueForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.Genres = UniqueGenres(f.Genres)
	if !IsChecked(f.SeekingTalent) {
		f.SeekingDescription = ""
	}
}

func (f *ArtistForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.Genres = UniqueGenres(f.Genres)
	if !IsChecked(f.SeekingVenue) {
		f.SeekingDescription = ""
	}
}

// Venue builds the venue record described by the form.
func (f *VenueForm) Venue() *Venue {
	v := &Venue{
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Address:      f.Address,
		Phone:        f.Phone,
		ImageLink:    f.ImageLink,
		FacebookLink: f.FacebookLink,
		Website:      f.WebsiteLink,
	}
	v.SetSeeking(IsChecked(f.SeekingTalent), f.SeekingDescription)
	return v
}

func (f *ArtistForm) Artist() *Artist {
	a := &Artist{
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Phone:        f.Phone,
		ImageLink:    f.ImageLink,
		FacebookLink: f.FacebookLink,
		Website:      f.WebsiteLink,
	}
	a.SetSeeking(IsChecked(f.SeekingVenue), f.SeekingDescription)
	return a
}

// NewVenueForm pre-fills an edit form from a stored venue and its genres.
func NewVenueForm(v *Venue, genres []string) VenueForm {
	seeking := "n"
	if v.SeekingTalent {
		seeking = "y"
	}
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		Genres:             genres,
		SeekingTalent:      seeking,
		SeekingDescription: v.SeekingDescription,
	}
}

func NewArtistForm(a *Artist, genres []string) ArtistForm {
	seeking := "n"
	if a.SeekingVenue {
		seeking = "y"
	}
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		Genres:             genres,
		SeekingVenue:       seeking,
		SeekingDescription: a.SeekingDescription,
	}
}

// UniqueGenres trims each genre and drops blanks and repeats, keeping the
// first occurrence order.
func UniqueGenres(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
