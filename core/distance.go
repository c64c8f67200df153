// File: distance.go
// Role: Distance resolver shared by all solvers.
//
// Three metrics are exposed and each solver picks its own policy:
//   - DirectDistance  : stored edge weight only; absence is reported, never guessed.
//   - Haversine       : great-circle distance in metres between two coordinates.
//   - ResolvedDistance: DirectDistance, falling back to Haversine when no edge exists.
package core

import "math"

// EarthRadius is the mean Earth radius in metres used by Haversine.
const EarthRadius = 6371000.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180.0

// DirectDistance returns the weight stored on the half-edge a→b.
// ok is false when there is no direct edge; a zero weight with ok == true
// is a genuine zero-length edge.
//
// Complexity: O(1).
func DirectDistance(a, b *Vertex) (w float64, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	e := a.EdgeTo(b.id)
	if e == nil {
		return 0, false
	}

	return e.Weight, true
}

// Haversine returns the great-circle distance in metres between a and b.
// Both vertices must carry coordinates; otherwise ErrNoCoordinates.
func Haversine(a, b *Vertex) (float64, error) {
	if a == nil || b == nil || !a.hasCoords || !b.hasCoords {
		return 0, ErrNoCoordinates
	}

	return HaversineCoords(a.coords, b.coords), nil
}

// HaversineCoords applies the haversine formula to two positions:
//
//	h = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
//	d = 2R · atan2(√h, √(1−h))
func HaversineCoords(p, q Coords) float64 {
	lat1 := p.Latitude * degToRad
	lat2 := q.Latitude * degToRad
	dLat := lat2 - lat1
	dLon := (q.Longitude - p.Longitude) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// Clamp FP overshoot so the square roots stay real.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ResolvedDistance returns the direct edge weight if present, otherwise the
// Haversine fallback. It fails only when the fallback is needed and one of
// the vertices has no coordinates.
func ResolvedDistance(a, b *Vertex) (float64, error) {
	if w, ok := DirectDistance(a, b); ok {
		return w, nil
	}

	return Haversine(a, b)
}
