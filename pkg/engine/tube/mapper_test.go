package tube_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringfall/pkg/engine/tube"
)

func TestSegmentAngle(t *testing.T) {
	m := tube.NewMapper(12, 5, 20)

	t.Run("exact fractions of the circle", func(t *testing.T) {
		for s := 0; s <= 12; s++ {
			want := 2 * math.Pi * float64(s) / 12
			assert.Equal(t, want, m.SegmentAngle(float64(s)), "segment %d", s)
		}
	})

	t.Run("closes the circle exactly", func(t *testing.T) {
		assert.Equal(t, 2*math.Pi, m.SegmentAngle(12))
	})

	t.Run("accepts fractional and out-of-range input without wrapping", func(t *testing.T) {
		assert.InDelta(t, math.Pi/12, m.SegmentAngle(0.5), 1e-12)
		assert.Equal(t, -2*math.Pi, m.SegmentAngle(-12))
		assert.Equal(t, 4*math.Pi, m.SegmentAngle(24))
	})
}

func TestTubeWorldRoundTrip(t *testing.T) {
	const segments, rows = 8, 20
	m := tube.NewMapper(segments, 4.5, float64(rows))

	for seg := 0; seg < segments; seg++ {
		for row := 0; row <= rows; row++ {
			x, y, z := m.TubeToWorld(float64(seg), float64(row))
			gotSeg, gotRow := m.WorldToTube(x, y, z)
			require.Equal(t, seg, gotSeg, "segment round trip at (%d,%d)", seg, row)
			require.Equal(t, row, gotRow, "row round trip at (%d,%d)", seg, row)
		}
	}
}

func TestWorldToTubeRounding(t *testing.T) {
	m := tube.NewMapper(8, 4, 20)

	// Positions off the tube surface round to the nearest cell.
	x, y, z := m.TubeToWorld(3, 7)
	seg, row := m.WorldToTube(x*0.5, y+0.3, z*0.5)
	assert.Equal(t, 3, seg)
	assert.Equal(t, 7, row)
}

func TestZeroRadiusDegenerates(t *testing.T) {
	m := tube.NewMapper(8, 0, 20)
	for seg := 0; seg < 8; seg++ {
		x, _, z := m.TubeToWorld(float64(seg), 0)
		assert.Zero(t, x)
		assert.Zero(t, z)
	}
}

func TestNewMapperPanicsOnInvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { tube.NewMapper(0, 4, 20) })
	assert.Panics(t, func() { tube.NewMapper(-1, 4, 20) })
	assert.Panics(t, func() { tube.NewMapper(8, -4, 20) })
	assert.Panics(t, func() { tube.NewMapper(8, 4, -20) })
}
