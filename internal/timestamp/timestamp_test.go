package timestamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Timestamp
		wantErr  bool
	}{
		{
			name:     "zero time",
			text:     "00:00",
			expected: Timestamp{Minutes: 0, Seconds: 0},
		},
		{
			name:     "minutes and seconds",
			text:     "03:15",
			expected: Timestamp{Minutes: 3, Seconds: 15},
		},
		{
			name:     "unpadded minutes",
			text:     "5:30",
			expected: Timestamp{Minutes: 5, Seconds: 30},
		},
		{
			name:     "hours fold into minutes",
			text:     "1:30:45",
			expected: Timestamp{Minutes: 90, Seconds: 45},
		},
		{
			name:     "large hour count",
			text:     "10:02:07",
			expected: Timestamp{Minutes: 602, Seconds: 7},
		},
		{
			name:    "single field",
			text:    "42",
			wantErr: true,
		},
		{
			name:    "four fields",
			text:    "1:2:3:4",
			wantErr: true,
		},
		{
			name:    "non numeric",
			text:    "aa:bb",
			wantErr: true,
		},
		{
			name:    "empty field",
			text:    ":30",
			wantErr: true,
		},
		{
			name:    "seconds out of range",
			text:    "03:75",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := Parse(tt.text)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimestamp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ts)
			}
		})
	}
}

func TestIsTimestampLike(t *testing.T) {
	tests := []struct {
		token    string
		expected bool
	}{
		{"00:00", true},
		{"1:02:03", true},
		{"123", true},
		{"::", true},
		{"00:00x", false},
		{"intro", false},
		{"3.15", false},
		{"-1:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTimestampLike(tt.token))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "02:05", Timestamp{Minutes: 2, Seconds: 5}.String())
	assert.Equal(t, "90:45", Timestamp{Minutes: 90, Seconds: 45}.String())
}
