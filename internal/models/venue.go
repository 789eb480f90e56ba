package models

import "time"

type Venue struct {
	ID                 uint         `gorm:"primaryKey" json:"id" example:"1"`
	Name               string       `gorm:"not null;index" json:"name" example:"The Musical Hop"`
	City               string       `gorm:"size:120;index:idx_venues_area" json:"city" example:"San Francisco"`
	State              string       `gorm:"size:120;index:idx_venues_area" json:"state" example:"CA"`
	Address            string       `gorm:"size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string       `gorm:"size:120" json:"phone" example:"123-123-1234"`
	ImageLink          string       `gorm:"size:500" json:"image_link"`
	FacebookLink       string       `gorm:"size:120" json:"facebook_link"`
	Website            string       `gorm:"size:500" json:"website"`
	SeekingTalent      bool         `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string       `gorm:"size:100" json:"seeking_description"`
	Genres             []VenueGenre `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"genres,omitempty"`
	Shows              []Show       `gorm:"foreignKey:VenueID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// SetSeeking applies the seeking flag, clearing the description when the
// venue is not looking for talent.
func (v *Venue) SetSeeking(seeking bool, description string) {
	v.SeekingTalent = seeking
	if !seeking {
		description = ""
	}
	v.SeekingDescription = description
}
