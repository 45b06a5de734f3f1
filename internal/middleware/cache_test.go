package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePayloadRoundTrip(t *testing.T) {
	body := []byte(`[{"id":"p1"}]`)
	payload := encodePayload(http.StatusOK, "application/json", body)

	status, ctype, got, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", ctype)
	assert.Equal(t, body, got)
}

func TestDecodePayloadRejectsTruncatedInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0})
	assert.False(t, ok)

	// Header claims a longer content type than the buffer holds.
	bad := encodePayload(http.StatusOK, "application/json", nil)[:8]
	_, _, _, ok = decodePayload(bad)
	assert.False(t, ok)
}
