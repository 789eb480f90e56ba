package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	instant := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday April, 1, 2035 at 8:00PM", FormatDateTime(&instant, Full))
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", FormatDateTime(&instant, Medium))
	assert.Equal(t, FormatDateTime(&instant, Medium), FormatDateTime(&instant, Mode("other")))
}

func TestFormatDateTimeEmpty(t *testing.T) {
	for _, mode := range []Mode{Full, Medium} {
		assert.Empty(t, FormatDateTime(nil, mode))

		got, err := FormatDateTimeString("", mode)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestFullAndMediumRepresentSameInstant(t *testing.T) {
	instant := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	full, err := time.Parse(fullLayout, FormatDateTime(&instant, Full))
	require.NoError(t, err)
	medium, err := time.Parse(mediumLayout, FormatDateTime(&instant, Medium))
	require.NoError(t, err)

	assert.True(t, full.Equal(instant))
	assert.True(t, medium.Equal(instant))
	assert.Greater(t, len(FormatDateTime(&instant, Full)), len(FormatDateTime(&instant, Medium)))
}

func TestFormatDateTimeString(t *testing.T) {
	got, err := FormatDateTimeString("2019-05-21T21:30:00.000Z", Full)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", got)

	_, err = FormatDateTimeString("not a date", Medium)
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
		" 2035-04-01 20:00 ",
	} {
		got, err := ParseDateTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDateTime("01/04/2035")
	assert.Error(t, err)
}
