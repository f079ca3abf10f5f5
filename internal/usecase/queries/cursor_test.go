//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 10, 14, 30, 0, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(at, id)

	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, at.Equal(gotTime))
}

func TestAfterCursor_TruncatesToMicros(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 10, 14, 30, 0, 123456789, time.UTC)

	gotTime, _, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(at.Truncate(time.Microsecond)))
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.NewString()))},
		{name: "unknown version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1234-" + uuid.NewString()))},
		{name: "missing uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
