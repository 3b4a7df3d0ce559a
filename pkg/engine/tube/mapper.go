package tube

import (
	"fmt"
	"math"
)

// Mapper converts between tube coordinates and continuous world-space
// coordinates. It is pure and queried by renderers each frame; the
// simulation itself never touches it.
type Mapper struct {
	segments int
	radius   float64
	height   float64
}

// NewMapper creates a mapper for a tube with the given segment count,
// radius and height. Invalid dimensions are a programmer error and panic.
func NewMapper(segments int, radius, height float64) Mapper {
	if segments <= 0 {
		panic(fmt.Sprintf("tube: mapper segments must be positive, got %d", segments))
	}
	if radius < 0 {
		panic(fmt.Sprintf("tube: mapper radius must not be negative, got %v", radius))
	}
	if height < 0 {
		panic(fmt.Sprintf("tube: mapper height must not be negative, got %v", height))
	}
	return Mapper{segments: segments, radius: radius, height: height}
}

// Segments returns the segment count of the tube.
func (m Mapper) Segments() int {
	return m.segments
}

// SegmentAngle returns the angle in radians for a segment index. It is a
// total function: fractional and out-of-range inputs are accepted without
// wrapping, so SegmentAngle(segments) closes the circle at exactly 2π.
func (m Mapper) SegmentAngle(segment float64) float64 {
	return 2 * math.Pi * segment / float64(m.segments)
}

// TubeToWorld maps a tube cell to its position on the tube surface.
// The tube axis is vertical and centered: y = row - height/2.
func (m Mapper) TubeToWorld(segment, row float64) (x, y, z float64) {
	theta := m.SegmentAngle(segment)
	return m.radius * math.Cos(theta), row - m.height/2, m.radius * math.Sin(theta)
}

// WorldToTube maps a world position back to the nearest tube cell. This is
// a lossy, rounding inverse: positions off the tube surface (e.g. a
// different radius) round to the nearest integer cell.
func (m Mapper) WorldToTube(x, y, z float64) (segment, row int) {
	theta := math.Atan2(z, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	segment = int(math.Round(theta/(2*math.Pi)*float64(m.segments))) % m.segments
	row = int(math.Round(y + m.height/2))
	return segment, row
}
