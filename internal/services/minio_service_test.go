package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinIOServiceOwns(t *testing.T) {
	s := &MinIOService{bucket: "booking-images", publicURL: "https://cdn.example/booking-images"}

	assert.True(t, s.Owns("https://cdn.example/booking-images/venues/hop_1a2b3c4d.jpg"))
	assert.False(t, s.Owns("https://images.unsplash.com/photo-1543900694.jpg"))
	assert.False(t, s.Owns("https://cdn.example/booking-images/"))
	assert.False(t, s.Owns(""))

	object, ok := s.objectFromURL("https://cdn.example/booking-images/artists/the%20band_1a2b3c4d.png?X-Amz-Expires=900")
	require.True(t, ok)
	assert.Equal(t, "artists/the band_1a2b3c4d.png", object)
}

func TestNewObjectPath(t *testing.T) {
	got, err := newObjectPath("venues", "../../etc/hop.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "venues/hop_"), got)
	assert.True(t, strings.HasSuffix(got, ".jpg"), got)

	_, err = newObjectPath("shows", "hop.jpg")
	assert.ErrorContains(t, err, "unknown image folder")

	_, err = newObjectPath("artists", "")
	assert.Error(t, err)
}
