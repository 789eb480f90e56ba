package models

import "time"

// Show books one artist at one venue. A nil StartTime means the show has
// not been scheduled yet.
type Show struct {
	ID        uint       `gorm:"primaryKey" json:"id" example:"1"`
	ArtistID  uint       `gorm:"not null;index" json:"artist_id" example:"4"`
	VenueID   uint       `gorm:"not null;index" json:"venue_id" example:"1"`
	StartTime *time.Time `gorm:"index" json:"start_time"`
	Artist    *Artist    `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue     *Venue     `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}
