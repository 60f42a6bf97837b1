package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2024, time.March, 9, 17, 30, 5, 250_000_000, time.UTC)

func TestEpochSeconds(t *testing.T) {
	v := FormatEpochSeconds(ref)
	assert.InDelta(t, 1710005405.25, v, 1e-6)
	assert.True(t, ref.Equal(ParseEpochSeconds(v)))
	assert.True(t, time.Unix(0, 0).UTC().Equal(ParseEpochSeconds(0)))
}

func TestMillisecondPrecision(t *testing.T) {
	fine := ref.Add(999 * time.Microsecond)
	assert.True(t, ref.Equal(ParseEpochSeconds(FormatEpochSeconds(fine))))

	got, err := ParseDateTime(FormatDateTime(fine))
	require.NoError(t, err)
	assert.True(t, ref.Equal(got))
}

func TestDateTime(t *testing.T) {
	s := FormatDateTime(ref)
	assert.Equal(t, "2024-03-09T17:30:05.25Z", s)

	got, err := ParseDateTime(s)
	require.NoError(t, err)
	assert.True(t, ref.Equal(got))

	got, err = ParseDateTime("2024-03-09T19:30:05.25+02:00")
	require.NoError(t, err)
	assert.True(t, ref.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	_, err = ParseDateTime("garbage")
	require.Error(t, err)
}

func TestHTTPDate(t *testing.T) {
	whole := ref.Truncate(time.Second)
	s := FormatHTTPDate(whole)
	assert.Equal(t, "Sat, 09 Mar 2024 17:30:05 GMT", s)

	got, err := ParseHTTPDate(s)
	require.NoError(t, err)
	assert.True(t, whole.Equal(got))

	_, err = ParseHTTPDate("garbage")
	require.Error(t, err)
}
