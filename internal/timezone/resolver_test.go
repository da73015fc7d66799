package timezone

import (
	"testing"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	type args struct {
		year   int
		month  time.Month
		day    int
		hour   int
		minute int
		tzName string
	}
	tests := []struct {
		name    string
		args    args
		want    time.Time
		wantErr error
	}{
		{
			name: "Should resolve New York summer time to UTC",
			args: args{2024, time.July, 4, 9, 30, "America/New_York"},
			want: time.Date(2024, time.July, 4, 13, 30, 0, 0, time.UTC),
		},
		{
			name: "Should resolve New York winter time to UTC",
			args: args{2024, time.January, 15, 9, 30, "America/New_York"},
			want: time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "Should resolve UTC as identity",
			args: args{2025, time.December, 31, 23, 59, "UTC"},
			want: time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:    "Should reject unknown timezone",
			args:    args{2024, time.July, 4, 9, 30, "Mars/Olympus_Mons"},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "Should reject February 30th",
			args:    args{2024, time.February, 30, 10, 0, "UTC"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "Should reject April 31st",
			args:    args{2024, time.April, 31, 10, 0, "Europe/Berlin"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "Should reject hour out of range",
			args:    args{2024, time.April, 30, 24, 0, "UTC"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "Should reject minute out of range",
			args:    args{2024, time.April, 30, 10, 60, "UTC"},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.args.year, tt.args.month, tt.args.day, tt.args.hour, tt.args.minute, tt.args.tzName)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestResolve_SpringForwardGap(t *testing.T) {
	// 2024-03-10 02:30 does not exist in New York; the gap time must
	// resolve forward without an error, never reject the selection.
	got, err := Resolve(2024, time.March, 10, 2, 30, "America/New_York")
	require.NoError(t, err)

	notBefore := time.Date(2024, time.March, 10, 6, 30, 0, 0, time.UTC)
	notAfter := time.Date(2024, time.March, 10, 7, 30, 0, 0, time.UTC)
	assert.False(t, got.Before(notBefore), "gap time resolved before the transition window: %v", got)
	assert.False(t, got.After(notAfter), "gap time resolved after the transition window: %v", got)
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, time.July, 4, 13, 30, 0, 0, time.UTC)

	got, err := Format(instant, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04 09:30", got)

	_, err = Format(instant, "Not/AZone")
	require.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestResolveFormatRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		hour   int
		minute int
		tzName string
	}{
		{"New York summer", 2024, time.July, 4, 9, 30, "America/New_York"},
		{"Tokyo", 2024, time.November, 1, 23, 45, "Asia/Tokyo"},
		{"Berlin winter", 2025, time.January, 2, 0, 5, "Europe/Berlin"},
		{"Kathmandu offset", 2024, time.June, 15, 12, 0, "Asia/Kathmandu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := Resolve(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.tzName)
			require.NoError(t, err)

			display, err := Format(instant, tt.tzName)
			require.NoError(t, err)

			want := time.Date(tt.year, tt.month, tt.day, tt.hour, tt.minute, 0, 0, time.UTC).Format(domain.DisplayTimeLayout)
			assert.Equal(t, want, display)
		})
	}
}
