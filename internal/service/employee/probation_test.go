package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbationEnd(t *testing.T) {
	tests := []struct {
		name     string
		join     time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain six months",
			join:     time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			months:   6,
			expected: time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to end of february",
			join:     time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap year february keeps the 29th",
			join:     time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rolls across the year boundary",
			join:     time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
			months:   6,
			expected: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "zero months is the join date",
			join:     time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			months:   0,
			expected: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "aug 31 plus one month clamps to sep 30",
			join:     time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProbationEnd(tt.join, tt.months))
		})
	}
}

func TestOnProbation(t *testing.T) {
	end := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, OnProbation(end.AddDate(0, 0, -1), &end))
	assert.False(t, OnProbation(end, &end), "probation lapses at the end instant")
	assert.False(t, OnProbation(end.AddDate(0, 0, 1), &end))
	assert.False(t, OnProbation(time.Now(), nil), "nil end date means no probation")
}
