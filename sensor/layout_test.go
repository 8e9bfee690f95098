package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayouts(t *testing.T) {
	observed := time.Date(2021, 6, 14, 9, 30, 0, 0, time.UTC)
	reading := Reading{Value: 23, Raw: "23", ObservedAt: observed}

	t.Run("classic", func(t *testing.T) {
		assert.Equal(t, "Current temperature: 23°C", Classic.Render(reading))
	})

	t.Run("detailed", func(t *testing.T) {
		expected := "Temperature: 23°C<br/>Modification time: " + observed.Local().Format("2006-01-02 15:04:05 -0700")
		assert.Equal(t, expected, Detailed.Render(reading))
	})

	t.Run("classic renders the raw line", func(t *testing.T) {
		assert.Equal(t, "Current temperature: abc°C", Classic.Render(Reading{Raw: "abc"}))
	})
}

func TestParseLayout(t *testing.T) {
	layout, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, Detailed, layout)

	layout, err = ParseLayout("classic")
	require.NoError(t, err)
	assert.Equal(t, Classic, layout)

	_, err = ParseLayout("fancy")
	assert.Error(t, err)
}

func TestCovertsToISODatetime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, now.UTC().Format(RFC3339Milli), string(TimestampFromTime(now)))
}
