package domain

import "math"

// Prefecture is a read-only reference entity (id → name).
type Prefecture struct {
	ID   string
	Name string
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// equatorial radius in km
const earthRadiusKm = 6378.137

// DistanceKm returns the great-circle distance to other, using the
// spherical law of cosines.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lng1 := c.Lon * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	lng2 := other.Lon * math.Pi / 180

	cosine := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lng2-lng1)
	// rounding can push the cosine a hair outside [-1,1]
	cosine = math.Max(-1, math.Min(1, cosine))
	return earthRadiusKm * math.Acos(cosine)
}
