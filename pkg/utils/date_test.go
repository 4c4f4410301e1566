package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")

	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseDate_EmptyMeansUnconstrained(t *testing.T) {
	date, err := ParseDate("")

	require.NoError(t, err)
	assert.Nil(t, date)
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	for _, input := range []string{"15/03/2024", "2024-3-15", "2024-03-15T00:00:00Z"} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}
