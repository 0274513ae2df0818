package datekit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstantZeroValueIsInvalid(t *testing.T) {
	var in Instant
	assert.False(t, in.Valid())
	assert.True(t, in.Equal(Invalid()))
	assert.Equal(t, "Invalid Date", in.String())
	assert.Equal(t, int64(0), in.UnixMilli())
}

func TestInstantAt(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	src := time.Date(2016, time.January, 19, 10, 7, 37, 123456789, loc)

	in := At(src)
	assert.True(t, in.Valid())
	assert.Equal(t, time.UTC, in.Time().Location())
	assert.Equal(t, 8, in.Hour())
	assert.Equal(t, 7, in.Minute())
	assert.Equal(t, "2016-01-19T08:07:37.123Z", in.String())
	assert.Equal(t, src.UnixMilli(), in.UnixMilli())
}

func TestInstantFromUnixMilli(t *testing.T) {
	in := FromUnixMilli(0)
	assert.True(t, in.Valid())
	assert.Equal(t, "1970-01-01T00:00:00.000Z", in.String())
	assert.True(t, in.Equal(Date(1970, time.January, 1, 0, 0, 0, 0)))
	assert.False(t, in.Equal(Invalid()))
}

func TestInstantDateNormalizes(t *testing.T) {
	in := Date(2015, time.February, 29, 0, 0, 0, 0)
	assert.Equal(t, "2015-03-01T00:00:00.000Z", in.String())
}
