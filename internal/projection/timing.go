package projection

import (
	"slices"
	"time"

	"booking-backend/internal/models"
)

// Timing places a show relative to a reference instant.
type Timing int

const (
	Upcoming Timing = iota
	Past
)

func (t Timing) String() string {
	if t == Past {
		return "past"
	}
	return "upcoming"
}

// Classify reports whether a show starting at start is past or upcoming at
// ref. Unscheduled shows (nil start) and shows starting exactly at ref are
// upcoming.
func Classify(start *time.Time, ref time.Time) Timing {
	if start == nil || !start.Before(ref) {
		return Upcoming
	}
	return Past
}

func IsUpcoming(start *time.Time, ref time.Time) bool {
	return Classify(start, ref) == Upcoming
}

// CountUpcoming counts the shows that are upcoming at ref.
func CountUpcoming(shows []models.Show, ref time.Time) int {
	n := 0
	for i := range shows {
		if IsUpcoming(shows[i].StartTime, ref) {
			n++
		}
	}
	return n
}

// Partition splits shows into past and upcoming at ref. Both halves are
// ordered by start time with unscheduled shows last.
func Partition(shows []models.Show, ref time.Time) (past, upcoming []models.Show) {
	past = make([]models.Show, 0, len(shows))
	upcoming = make([]models.Show, 0, len(shows))
	for _, s := range shows {
		if Classify(s.StartTime, ref) == Past {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	slices.SortStableFunc(past, byStartTime)
	slices.SortStableFunc(upcoming, byStartTime)
	return past, upcoming
}

func byStartTime(a, b models.Show) int {
	switch {
	case a.StartTime == nil && b.StartTime == nil:
		return 0
	case a.StartTime == nil:
		return 1
	case b.StartTime == nil:
		return -1
	}
	return a.StartTime.Compare(*b.StartTime)
}
