package kernel_test

import (
	"math"
	"testing"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(100.523186, 13.736717)
		require.NoError(t, err)
		assert.InDelta(t, 100.523186, p.Lon(), 0)
		assert.InDelta(t, 13.736717, p.Lat(), 0)
		assert.NoError(t, p.Validate())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(kernel.GeoMinLon, kernel.GeoMaxLat)
		require.NoError(t, err)
		_, err = kernel.NewGeoPoint(kernel.GeoMaxLon, kernel.GeoMinLat)
		require.NoError(t, err)
	})

	t.Run("out of range coordinates are rejected", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(181, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(0, -91)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("non-finite coordinates are rejected", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewGeoPoint(0, math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

func TestParseGeoPoint(t *testing.T) {
	t.Run("parses lon lat pair", func(t *testing.T) {
		p, err := kernel.ParseGeoPoint("100.523186 13.736717")
		require.NoError(t, err)
		assert.InDelta(t, 100.523186, p.Lon(), 0)
		assert.InDelta(t, 13.736717, p.Lat(), 0)
	})

	t.Run("tolerates extra whitespace", func(t *testing.T) {
		p, err := kernel.ParseGeoPoint("  -0.1   51.5  ")
		require.NoError(t, err)
		assert.InDelta(t, -0.1, p.Lon(), 0)
		assert.InDelta(t, 51.5, p.Lat(), 0)
	})

	t.Run("rejects wrong field count", func(t *testing.T) {
		for _, input := range []string{"", "100.5", "1 2 3", "no-space"} {
			_, err := kernel.ParseGeoPoint(input)
			require.Error(t, err, "input %q", input)
		}
	})

	t.Run("rejects non-numeric fields", func(t *testing.T) {
		_, err := kernel.ParseGeoPoint("abc 13.7")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round trips through String", func(t *testing.T) {
		p, err := kernel.ParseGeoPoint("100.5 13.75")
		require.NoError(t, err)

		again, err := kernel.ParseGeoPoint(p.String())
		require.NoError(t, err)

		equal, err := p.IsEqual(again)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestGeoPointIsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(100.5, 13.7)
		p2, _ := kernel.NewGeoPoint(100.5, 13.7)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(100.5, 13.7)
		p2, _ := kernel.NewGeoPoint(100.5, 14.7)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(100.5, 13.7)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)
		require.Error(t, err)
	})
}
