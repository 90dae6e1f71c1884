package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/eedept/dms-api/pkg/errors"
)

func TestParseID(t *testing.T) {
	oid, err := ParseID("665f1e2a9c3b4d5e6f708192")
	require.NoError(t, err)
	assert.Equal(t, "665f1e2a9c3b4d5e6f708192", oid.Hex())
}

func TestParseIDAllZeros(t *testing.T) {
	// The all-zeros id is structurally valid; whether it matches anything
	// is a lookup concern, not a parsing one.
	oid, err := ParseID("000000000000000000000000")
	require.NoError(t, err)
	assert.True(t, oid.IsZero())
}

func TestParseIDRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "665f1e2a9c3b4d5e6f7081"} {
		_, err := ParseID(raw)
		require.Error(t, err, raw)
		assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code, raw)
	}
}
