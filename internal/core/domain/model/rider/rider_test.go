package rider_test

import (
	"testing"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("valid rider starts available", func(t *testing.T) {
		id := kernel.NewUUID()
		r, err := rider.NewRider(id, "0891112222", "$2a$10$digest", "Anan", "กข-1234")
		require.NoError(t, err)

		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "0891112222", r.Phone())
		assert.Equal(t, "Anan", r.Name())
		assert.Equal(t, "กข-1234", r.VehicleRegistration())
		assert.True(t, r.Available())
		assert.Nil(t, r.Location())
		assert.NoError(t, r.Validate())
	})

	t.Run("vehicle registration is required", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), "0891112222", "digest", "Anan", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), "", "digest", "Anan", "กข-1234")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = rider.NewRider(kernel.NewUUID(), "0891112222", "", "Anan", "กข-1234")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r rider.Rider
		require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)
	})
}

func TestRiderAvailability(t *testing.T) {
	t.Run("busy and free toggling", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "0891112222", "digest", "Anan", "กข-1234")
		require.NoError(t, err)

		r.MarkBusy()
		assert.False(t, r.Available())

		r.MarkFree()
		assert.True(t, r.Available())
	})
}

func TestRiderMoveTo(t *testing.T) {
	t.Run("updates location", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "0891112222", "digest", "Anan", "กข-1234")
		require.NoError(t, err)

		p, err := kernel.NewGeoPoint(100.523186, 13.736717)
		require.NoError(t, err)
		require.NoError(t, r.MoveTo(p))

		require.NotNil(t, r.Location())
		equal, err := r.Location().IsEqual(p)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("unconstructed point is rejected", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "0891112222", "digest", "Anan", "กข-1234")
		require.NoError(t, err)

		var p kernel.GeoPoint
		require.Error(t, r.MoveTo(p))
		assert.Nil(t, r.Location())
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("restores persisted availability", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(100.5, 13.7)
		r, err := rider.RestoreRider(kernel.NewUUID(), "0891112222", "digest", "Anan", "กข-1234",
			"rider.jpg", &p, false)
		require.NoError(t, err)

		assert.False(t, r.Available())
		assert.Equal(t, "rider.jpg", r.ImageRef())
		require.NotNil(t, r.Location())
	})
}
