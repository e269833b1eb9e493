package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, text string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", text)
	require.NoError(t, err)
	return parsed
}

func dayPtr(t *testing.T, text string) *time.Time {
	t.Helper()
	d := day(t, text)
	return &d
}

func resultOn(t *testing.T, date, club string) *Result {
	t.Helper()
	return New(day(t, date), club, "Test Tournament", nil, 1, 1)
}

func TestWindowContains(t *testing.T) {
	window := Window{Start: dayPtr(t, "2024-03-09"), End: dayPtr(t, "2024-03-10")}

	assert.True(t, window.Contains(day(t, "2024-03-09")), "start bound is inclusive")
	assert.True(t, window.Contains(day(t, "2024-03-10")), "end bound is inclusive")
	assert.False(t, window.Contains(day(t, "2024-03-08")))
	assert.False(t, window.Contains(day(t, "2024-03-11")))
}

func TestWindowOpenBounds(t *testing.T) {
	open := Window{}
	assert.True(t, open.Contains(day(t, "1999-01-01")))
	assert.True(t, open.Contains(day(t, "2099-12-31")))

	season := Window{Start: dayPtr(t, "2024-03-01")}
	assert.False(t, season.Contains(day(t, "2024-02-29")))
	assert.True(t, season.Contains(day(t, "2024-03-01")))
	assert.True(t, season.Contains(day(t, "2025-06-01")))
}

func TestWindowString(t *testing.T) {
	assert.Equal(t, "2024-03-09 to 2024-03-10",
		Window{Start: dayPtr(t, "2024-03-09"), End: dayPtr(t, "2024-03-10")}.String())
	assert.Equal(t, "2024-03-01 onward", Window{Start: dayPtr(t, "2024-03-01")}.String())
	assert.Equal(t, "full dataset", Window{}.String())
}

func TestResolveWeekendExplicitStartOnly(t *testing.T) {
	window, err := ResolveWeekend(dayPtr(t, "2024-03-09"), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, day(t, "2024-03-09"), *window.Start)
	assert.Equal(t, day(t, "2024-03-10"), *window.End)
}

func TestResolveWeekendExplicitBounds(t *testing.T) {
	window, err := ResolveWeekend(dayPtr(t, "2024-03-08"), dayPtr(t, "2024-03-10"), nil)
	require.NoError(t, err)

	assert.Equal(t, day(t, "2024-03-08"), *window.Start)
	assert.Equal(t, day(t, "2024-03-10"), *window.End)
}

func TestDetectWeekend(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		expected string // expected Saturday; "" means ErrNoWeekendData
	}{
		{
			name:     "saturday only",
			dates:    []string{"2024-03-09"},
			expected: "2024-03-09",
		},
		{
			name:     "sunday anchors previous saturday",
			dates:    []string{"2024-03-10"},
			expected: "2024-03-09",
		},
		{
			name:     "latest weekend wins",
			dates:    []string{"2024-03-02", "2024-03-09", "2024-03-03"},
			expected: "2024-03-09",
		},
		{
			name:     "weekday dates ignored",
			dates:    []string{"2024-03-06", "2024-03-09"},
			expected: "2024-03-09",
		},
		{
			name:  "no weekend dates",
			dates: []string{"2024-03-05", "2024-03-06", "2024-03-07"},
		},
		{
			name:  "empty dataset",
			dates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]*Result, 0, len(tt.dates))
			for _, d := range tt.dates {
				results = append(results, resultOn(t, d, "DFW Elite"))
			}

			window, err := DetectWeekend(results)
			if tt.expected == "" {
				assert.ErrorIs(t, err, ErrNoWeekendData)
				return
			}

			require.NoError(t, err)
			saturday := day(t, tt.expected)
			assert.Equal(t, saturday, *window.Start)
			assert.Equal(t, saturday.AddDate(0, 0, 1), *window.End)
		})
	}
}
