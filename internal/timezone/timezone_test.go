package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(DefaultTimezone) })

	assert.False(t, Set("Mars/Olympus"))
	assert.Equal(t, DefaultTimezone, Name())

	assert.True(t, Set("UTC"))
	assert.Equal(t, time.UTC.String(), Location().String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())

	_, err = ParseDate("01/01/2024")
	assert.Error(t, err)
}
