package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.NotEqual(t, uuid.Nil.String(), id1.String())
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	for _, input := range []string{
		canonical,
		"{550e8400-e29b-41d4-a716-446655440000}",
		"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
		"550e8400e29b41d4a716446655440000",
	} {
		t.Run(input, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)
			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}

	t.Run("malformed_input_is_a_validation_error", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_nil_uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("rejects_short_input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
