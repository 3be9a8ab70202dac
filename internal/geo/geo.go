// Package geo contains the pure proximity computations every other component
// consults: great-circle distance, circular geofence membership and nearest /
// within-radius searches. No state, no I/O.
package geo

import (
	"math"

	"patrolwatch/internal/domain"
)

const earthRadiusM = 6_371_000.0

// DistanceMeters returns the haversine great-circle distance between two
// points. Accurate well within 0.5% for intra-city distances; no ellipsoidal
// correction.
func DistanceMeters(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	rLat1 := deg2rad(a.Lat)
	rLat2 := deg2rad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// IsWithin reports whether the point falls inside the zone's circle. The
// boundary is inclusive: a point exactly radius meters from center counts.
func IsWithin(point domain.Coordinate, zone domain.Zone) bool {
	return DistanceMeters(point, zone.Center) <= zone.RadiusM
}

// Nearest scans candidates for the minimum distance to point. Ties break in
// input order (first wins) so auto-assignment stays deterministic. The second
// return is the distance in meters; ok is false on an empty candidate set.
func Nearest(point domain.Coordinate, candidates []domain.Zone) (domain.Zone, float64, bool) {
	if len(candidates) == 0 {
		return domain.Zone{}, 0, false
	}
	best := candidates[0]
	bestDist := DistanceMeters(point, best.Center)
	for _, z := range candidates[1:] {
		if d := DistanceMeters(point, z.Center); d < bestDist {
			best, bestDist = z, d
		}
	}
	return best, bestDist, true
}

// ZoneDistance pairs a zone with its computed distance from a query point.
type ZoneDistance struct {
	Zone      domain.Zone
	DistanceM float64
}

// FindWithinRadius returns the zones within radiusM of point, ascending by
// distance. A latitude/longitude bounding box (1° latitude ≈ 111 km) prunes
// the candidate set before the exact haversine pass; the exact distance is
// always the final arbiter.
func FindWithinRadius(point domain.Coordinate, radiusM float64, candidates []domain.Zone) []ZoneDistance {
	latDelta := radiusM / 111_000.0
	lngDelta := latDelta
	if cosLat := math.Cos(deg2rad(point.Lat)); cosLat > 0.01 {
		lngDelta = latDelta / cosLat
	}

	out := make([]ZoneDistance, 0, len(candidates))
	for _, z := range candidates {
		if math.Abs(z.Center.Lat-point.Lat) > latDelta || math.Abs(z.Center.Lng-point.Lng) > lngDelta {
			continue
		}
		if d := DistanceMeters(point, z.Center); d <= radiusM {
			out = append(out, ZoneDistance{Zone: z, DistanceM: d})
		}
	}
	sortByDistance(out)
	return out
}

// sortByDistance performs an insertion sort, fine for the small result sets
// the bounding box leaves behind. Stable, so equal distances keep input order.
func sortByDistance(items []ZoneDistance) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && items[j].DistanceM > key.DistanceM {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
