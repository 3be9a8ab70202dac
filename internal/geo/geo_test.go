package geo

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"patrolwatch/internal/domain"
)

func coord(lat, lng float64) domain.Coordinate {
	return domain.Coordinate{Lat: lat, Lng: lng}
}

func zoneAt(lat, lng, radiusM float64) domain.Zone {
	return domain.Zone{ID: uuid.New(), Center: coord(lat, lng), RadiusM: radiusM}
}

func TestDistanceMeters_SymmetricAndZero(t *testing.T) {
	pairs := [][2]domain.Coordinate{
		{coord(55.7558, 37.6173), coord(59.9311, 30.3609)},
		{coord(0, 0), coord(0, 1)},
		{coord(-33.8688, 151.2093), coord(40.7128, -74.0060)},
		{coord(89.9, 0), coord(89.9, 180)},
	}
	for _, p := range pairs {
		ab := DistanceMeters(p[0], p[1])
		ba := DistanceMeters(p[1], p[0])
		if ab != ba {
			t.Errorf("distance not symmetric: %v vs %v", ab, ba)
		}
	}
	if d := DistanceMeters(coord(51.5, -0.12), coord(51.5, -0.12)); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Moscow -> Saint Petersburg, ~634 km surface distance.
	got := DistanceMeters(coord(55.7558, 37.6173), coord(59.9311, 30.3609))
	want := 634_000.0
	if math.Abs(got-want)/want > 0.005 {
		t.Errorf("Moscow-SPb distance = %v m, want %v m within 0.5%%", got, want)
	}

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	got = DistanceMeters(coord(10, 20), coord(11, 20))
	want = 111_194.9
	if math.Abs(got-want) > 100 {
		t.Errorf("one-degree latitude distance = %v m, want ~%v m", got, want)
	}
}

func TestIsWithin_BoundaryInclusive(t *testing.T) {
	center := coord(55.7558, 37.6173)
	point := coord(55.7568, 37.6173)
	d := DistanceMeters(point, domain.Zone{Center: center}.Center)

	onBoundary := domain.Zone{Center: center, RadiusM: d}
	if !IsWithin(point, onBoundary) {
		t.Error("point exactly on the radius must count as inside")
	}

	justOutside := domain.Zone{Center: center, RadiusM: d - 0.01}
	if IsWithin(point, justOutside) {
		t.Error("point past the radius must count as outside")
	}
}

func TestNearest_EmptyAndTieBreak(t *testing.T) {
	if _, _, ok := Nearest(coord(0, 0), nil); ok {
		t.Fatal("Nearest on empty candidates must report ok=false")
	}

	point := coord(50, 10)
	first := zoneAt(50.01, 10, 100)
	second := zoneAt(49.99, 10, 100) // equidistant with first
	far := zoneAt(51, 10, 100)

	got, dist, ok := Nearest(point, []domain.Zone{first, second, far})
	if !ok {
		t.Fatal("expected a nearest zone")
	}
	if got.ID != first.ID {
		t.Errorf("tie must break in input order: got %s, want %s", got.ID, first.ID)
	}
	if dist <= 0 || dist > 2000 {
		t.Errorf("implausible nearest distance %v", dist)
	}
}

func TestFindWithinRadius_SortedAndFiltered(t *testing.T) {
	point := coord(55.75, 37.61)
	near := zoneAt(55.751, 37.61, 100)   // ~111 m
	mid := zoneAt(55.76, 37.61, 100)     // ~1.1 km
	outside := zoneAt(56.75, 37.61, 100) // ~111 km

	got := FindWithinRadius(point, 5_000, []domain.Zone{mid, outside, near})
	if len(got) != 2 {
		t.Fatalf("got %d zones, want 2", len(got))
	}
	if got[0].Zone.ID != near.ID || got[1].Zone.ID != mid.ID {
		t.Error("results must be ascending by distance")
	}
	if got[0].DistanceM >= got[1].DistanceM {
		t.Errorf("distances not sorted: %v, %v", got[0].DistanceM, got[1].DistanceM)
	}
}

func TestFindWithinRadius_BoundingBoxKeepsBoundary(t *testing.T) {
	// A zone sitting right at the search radius must survive the bbox
	// prefilter; the exact-distance check is the final arbiter.
	point := coord(0, 0)
	boundary := zoneAt(0, 0.0449, 50) // ~4.995 km east
	got := FindWithinRadius(point, 5_000, []domain.Zone{boundary})
	if len(got) != 1 {
		t.Fatalf("boundary zone pruned: got %d results", len(got))
	}
}
