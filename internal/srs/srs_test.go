// internal/srs/srs_test.go
package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		name   string
		rating Rating
		want   time.Duration
	}{
		{"again_1分", Again, 1 * time.Minute},
		{"hard_10分", Hard, 10 * time.Minute},
		{"good_1日", Good, 1440 * time.Minute},
		{"easy_3日", Easy, 4320 * time.Minute},
		{"範囲外_負数はデフォルト", Rating(-1), DefaultInterval},
		{"範囲外_大きい値はデフォルト", Rating(4), DefaultInterval},
		{"範囲外_極端な値はデフォルト", Rating(99), DefaultInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interval(tt.rating))
		})
	}
}

func TestNextReview(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rating Rating
		want   time.Time
	}{
		{"again", Again, now.Add(1 * time.Minute)},
		{"hard", Hard, now.Add(10 * time.Minute)},
		{"good", Good, now.Add(24 * time.Hour)},
		{"easy", Easy, now.Add(72 * time.Hour)},
		{"範囲外はデフォルト間隔", Rating(10), now.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextReview(now, tt.rating))
		})
	}
}

func TestRating_IsValid(t *testing.T) {
	assert.True(t, Again.IsValid())
	assert.True(t, Easy.IsValid())
	assert.False(t, Rating(-1).IsValid())
	assert.False(t, Rating(4).IsValid())
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "again", Again.String())
	assert.Equal(t, "hard", Hard.String())
	assert.Equal(t, "good", Good.String())
	assert.Equal(t, "easy", Easy.String())
	assert.Equal(t, "unknown", Rating(7).String())
}
