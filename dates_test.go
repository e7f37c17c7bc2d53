package xlautomaten

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIDate(t *testing.T) {
	t.Parallel()

	parsed, err := ParseAPIDate("2023-11-25 22:11:18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 25, 22, 11, 18, 0, time.UTC), parsed)
}

func TestParseAPIDate_Empty(t *testing.T) {
	t.Parallel()

	_, err := ParseAPIDate("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty date")
}

func TestParseAPIDate_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseAPIDate("2023-11-25T22:11:18Z")
	assert.Error(t, err)
}

func TestFormatAPIDate_RoundTrip(t *testing.T) {
	t.Parallel()

	original := time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC)
	parsed, err := ParseAPIDate(FormatAPIDate(original))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestFormatAPIDate_ConvertsToUTC(t *testing.T) {
	t.Parallel()

	berlin := time.FixedZone("CET", 3600)
	local := time.Date(2024, 1, 1, 13, 0, 0, 500, berlin)
	assert.Equal(t, "2024-01-01 12:00:00", FormatAPIDate(local))
}

func TestParseOptionalAPIDate(t *testing.T) {
	t.Parallel()

	got, err := parseOptionalAPIDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalAPIDate(ptr(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalAPIDate(ptr("2023-01-02 03:04:05"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), *got)

	_, err = parseOptionalAPIDate(ptr("not a date"))
	assert.Error(t, err)
}
