package models

import "time"

type Artist struct {
	ID                 uint          `gorm:"primaryKey" json:"id" example:"4"`
	Name               string        `gorm:"not null;index" json:"name" example:"Guns N Petals"`
	City               string        `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string        `gorm:"size:120" json:"state" example:"CA"`
	Phone              string        `gorm:"size:120" json:"phone" example:"326-123-5000"`
	ImageLink          string        `gorm:"size:500" json:"image_link"`
	FacebookLink       string        `gorm:"size:120" json:"facebook_link"`
	Website            string        `gorm:"size:500" json:"website"`
	SeekingVenue       bool          `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string        `gorm:"size:100" json:"seeking_description"`
	Genres             []ArtistGenre `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"genres,omitempty"`
	Shows              []Show        `gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}

// SetSeeking applies the seeking flag, clearing the description when the
// artist is not looking for a venue.
func (a *Artist) SetSeeking(seeking bool, description string) {
	a.SeekingVenue = seeking
	if !seeking {
		description = ""
	}
	a.SeekingDescription = description
}
