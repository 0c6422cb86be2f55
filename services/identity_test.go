package services

import (
	"testing"

	apperrors "cms-backend/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductIDRoundTrip(t *testing.T) {
	for i := 0; i < 10; i++ {
		id := primitive.NewObjectID()

		decoded, err := decodeProductID(encodeProductID(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeProductIDWellFormed(t *testing.T) {
	oid, err := decodeProductID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", encodeProductID(oid))
}

func TestDecodeProductIDMalformed(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"too short", "507f1f77bcf86cd7994390"},
		{"too long", "507f1f77bcf86cd79943901100"},
		{"non-hex", "zzzf1f77bcf86cd799439011"},
		{"uuid shaped", "b7a0c6f2-63d4-4f0a-9c1d-2f6f4f1a9b3c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeProductID(tc.id)
			require.Error(t, err)
			assert.ErrorContains(t, err, apperrors.ErrInvalidProductID.Message)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrInvalidProductID.Code, appErr.Code)
		})
	}
}
