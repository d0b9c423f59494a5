package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"two hours", "17:00", "19:00", "2"},
		{"half past to half past", "17:30", "18:30", "1"},
		{"ninety minutes", "17:00", "18:30", "1.5"},
		{"twenty minutes rounds to one decimal", "17:00", "17:20", "0.3"},
		{"fifty minutes", "18:00", "18:50", "0.8"},
		{"absolute difference", "19:00", "17:00", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationHours("2023-10-25", tt.start, tt.end, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDurationHours_Places(t *testing.T) {
	got, err := DurationHours("2023-10-25", "17:00", "17:20", 2)
	require.NoError(t, err)
	assert.Equal(t, "0.33", got.String())
}

func TestDurationHours_InvalidInput(t *testing.T) {
	_, err := DurationHours("2023-10-25", "5pm", "19:00", 1)
	assert.Error(t, err)

	_, err = DurationHours("25-10-2023", "17:00", "19:00", 1)
	assert.Error(t, err)
}
