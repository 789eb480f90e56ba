package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffGenres(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		wanted     []string
		wantAdd    []string
		wantRemove []string
	}{
		{"equal sets", []string{"Jazz", "Blues"}, []string{"Blues", "Jazz"}, nil, nil},
		{"both empty", nil, nil, nil, nil},
		{"from nothing", nil, []string{"Jazz", "Blues"}, []string{"Jazz", "Blues"}, nil},
		{"to nothing", []string{"Jazz"}, nil, nil, []string{"Jazz"}},
		{"overlap", []string{"Jazz", "Folk", "Soul"}, []string{"Soul", "Rock", "Jazz"}, []string{"Rock"}, []string{"Folk"}},
		{"repeats in wanted", []string{"Jazz"}, []string{"Rock", "Rock", "Jazz"}, []string{"Rock"}, nil},
		{"case sensitive", []string{"jazz"}, []string{"Jazz"}, []string{"Jazz"}, []string{"jazz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := DiffGenres(tt.current, tt.wanted)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Blue%", containsPattern("Blue"))
	assert.Equal(t, `%100\% \_real\\%`, containsPattern(`100% _real\`))
	assert.Equal(t, "%%", containsPattern(""))
}
