package models

// VenueGenre tags a venue with a free-text genre. The (venue, genre) pair is
// the primary key, so a venue lists each genre at most once.
type VenueGenre struct {
	VenueID uint   `gorm:"primaryKey;autoIncrement:false" json:"venue_id"`
	Genre   string `gorm:"primaryKey;size:100" json:"genre"`
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}

type ArtistGenre struct {
	ArtistID uint   `gorm:"primaryKey;autoIncrement:false" json:"artist_id"`
	Genre    string `gorm:"primaryKey;size:100" json:"genre"`
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}
