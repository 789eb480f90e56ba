package projection

import (
	"testing"
	"time"

	"booking-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var ref = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := ref.Add(d)
	return &t
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		start *time.Time
		want  Timing
	}{
		{"unscheduled", nil, Upcoming},
		{"boundary", at(0), Upcoming},
		{"future", at(time.Hour), Upcoming},
		{"just before", at(-time.Nanosecond), Past},
		{"long ago", at(-365 * 24 * time.Hour), Past},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.start, ref))
		})
	}
}

func TestPartitionPlacesEveryShowOnce(t *testing.T) {
	shows := []models.Show{
		{ID: 1, StartTime: at(2 * time.Hour)},
		{ID: 2, StartTime: nil},
		{ID: 3, StartTime: at(-time.Hour)},
		{ID: 4, StartTime: at(0)},
		{ID: 5, StartTime: at(-48 * time.Hour)},
	}

	past, upcoming := Partition(shows, ref)

	assert.Equal(t, []uint{5, 3}, ids(past))
	assert.Equal(t, []uint{4, 1, 2}, ids(upcoming))
	assert.Len(t, append(past, upcoming...), len(shows))
	assert.Equal(t, 3, CountUpcoming(shows, ref))
}

func TestPartitionEmpty(t *testing.T) {
	past, upcoming := Partition(nil, ref)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
	assert.NotNil(t, past)
}

func TestTimingString(t *testing.T) {
	assert.Equal(t, "past", Past.String())
	assert.Equal(t, "upcoming", Upcoming.String())
}

func ids(shows []models.Show) []uint {
	out := make([]uint, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.ID)
	}
	return out
}
