package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_EquatorDegree(t *testing.T) {
	// One degree of longitude at the equator is roughly 111 km.
	distance := DistanceKm(0, 0, 0, 1)
	assert.InDelta(t, 111.19, distance, 0.5)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(52.52, 13.405, 52.52, 13.405))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	forward := DistanceKm(52.52, 13.405, 48.8566, 2.3522)
	backward := DistanceKm(48.8566, 2.3522, 52.52, 13.405)
	assert.InDelta(t, forward, backward, 1e-9)
	// Berlin to Paris is about 878 km.
	assert.InDelta(t, 878, forward, 10)
}

func TestDistanceMeters(t *testing.T) {
	assert.InDelta(t, DistanceKm(0, 0, 0, 1)*1000, DistanceMeters(0, 0, 0, 1), 1e-6)
}

func TestDegreeRadius(t *testing.T) {
	assert.InDelta(t, 0.45045, DegreeRadius(50000), 1e-5)
	assert.Equal(t, 0.0, DegreeRadius(0))
}

func TestBoundingBox(t *testing.T) {
	bound := BoundingBox(10, 20, 0.5)
	assert.Equal(t, 19.5, bound.Min.X())
	assert.Equal(t, 9.5, bound.Min.Y())
	assert.Equal(t, 20.5, bound.Max.X())
	assert.Equal(t, 10.5, bound.Max.Y())
}

func TestBoundingBox_OverApproximatesRadius(t *testing.T) {
	// Every point within the metric radius must fall inside the box.
	lat, lon := 48.0, 11.0
	radiusMeters := 30000.0
	bound := BoundingBox(lat, lon, DegreeRadius(radiusMeters))

	for _, offset := range []struct{ dLat, dLon float64 }{
		{0.2, 0}, {-0.2, 0}, {0, 0.2}, {0, -0.2},
	} {
		pLat, pLon := lat+offset.dLat, lon+offset.dLon
		if DistanceMeters(lat, lon, pLat, pLon) <= radiusMeters {
			assert.True(t, pLat >= bound.Min.Y() && pLat <= bound.Max.Y())
			assert.True(t, pLon >= bound.Min.X() && pLon <= bound.Max.X())
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.True(t, ValidCoordinate(90, -180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.1))
}
