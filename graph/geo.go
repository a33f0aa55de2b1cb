package graph

import "math"

// earthRadiusMeters is the R used by the equirectangular approximation
// below. The engine treats this formula as its authoritative metric: it
// is cheap and, for the short arcs a road network is built from, accurate
// enough that no caller should need a more exact great-circle formula.
const earthRadiusMeters = 6371000.0

// EquirectangularMeters is the distance component of CostSeconds, factored
// out so it can be cross-checked on its own against a known city distance
// (spec's §3 requirement): R * sqrt((Δλ·cos((φ1+φ2)/2))² + (Δφ)²).
func EquirectangularMeters(a, b Node) float64 {
	dLng := b.Lng - a.Lng
	dLat := b.Lat - a.Lat
	x := dLng * math.Cos((a.Lat+b.Lat)/2)
	y := dLat
	return earthRadiusMeters * math.Sqrt(x*x+y*y)
}

// CostSeconds computes the arc travel-time cost, in whole seconds,
// between two nodes whose Lat/Lng are already in radians, for a road
// with the given nominal speed in km/h. It is the equirectangular
// approximation:
//
//	round( R * sqrt((Δλ·cos((φ1+φ2)/2))² + (Δφ)²) / (speed·1000/3600) )
func CostSeconds(a, b Node, speedKmh int) int {
	meters := EquirectangularMeters(a, b)
	metersPerSecond := float64(speedKmh) * 1000 / 3600
	return int(math.Round(meters / metersPerSecond))
}
