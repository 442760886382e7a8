package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpanContext64(t *testing.T) {
	c, err := ParseSpanContext("00000000000004d2", "ff")
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), c.TraceID())
	assert.Equal(t, uint64(255), c.SpanID())
	assert.Equal(t, "000000000000000000000000000004d2", c.TraceID128())
}

func TestParseSpanContext128(t *testing.T) {
	c, err := ParseSpanContext("0000000000000001000000000000000a", "1")
	require.NoError(t, err)

	assert.Equal(t, uint64(10), c.TraceID())
	assert.Equal(t, [16]byte{7: 1, 15: 10}, c.TraceID128Bytes())
}

func TestParseSpanContextCorrupted(t *testing.T) {
	_, err := ParseSpanContext("xyz", "1")
	assert.ErrorIs(t, err, ErrSpanContextCorrupted)

	_, err = ParseSpanContext("1", "not hex")
	assert.ErrorIs(t, err, ErrSpanContextCorrupted)
}
