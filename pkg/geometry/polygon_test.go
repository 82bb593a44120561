package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skin-detector/pkg/geometry"
)

// containsOrOnHull reports whether p is inside the hull or on its boundary.
// The hull is counter-clockwise, so every interior point is on the
// non-negative side of each edge.
func containsOrOnHull(hull []geometry.Point2D, p geometry.Point2D) bool {
	n := len(hull)
	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross < -1e-9 {
			return false
		}
	}
	return true
}

func TestConvexHullDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []geometry.Point2D
	}{
		{name: "Empty input", points: []geometry.Point2D{}},
		{name: "Single point", points: []geometry.Point2D{{X: 3, Y: 4}}},
		{name: "Two points", points: []geometry.Point2D{{X: 0, Y: 0}, {X: 5, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull := geometry.ConvexHull(tt.points)
			assert.Equal(t, tt.points, hull, "fewer than 3 points must be returned unchanged")
		})
	}
}

func TestConvexHullSquareWithInterior(t *testing.T) {
	points := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 5, Y: 5}, // interior
		{X: 5, Y: 1}, // interior
	}

	hull := geometry.ConvexHull(points)

	require.Len(t, hull, 4, "interior points must be dropped")
	assert.True(t, geometry.IsConvex(hull))
	for _, p := range points {
		assert.True(t, containsOrOnHull(hull, p), "point %+v must be inside or on the hull", p)
	}
}

func TestConvexHullAnchorSelection(t *testing.T) {
	// Two points share the maximum y; the leftmost must be the anchor and
	// therefore the first hull vertex.
	points := []geometry.Point2D{
		{X: 8, Y: 10},
		{X: 2, Y: 10},
		{X: 5, Y: 0},
	}

	hull := geometry.ConvexHull(points)

	require.Len(t, hull, 3)
	assert.Equal(t, geometry.Point2D{X: 2, Y: 10}, hull[0])
}

func TestConvexHullCollinear(t *testing.T) {
	points := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 10},
	}

	hull := geometry.ConvexHull(points)

	// Collinear input collapses to the two extreme points.
	require.Len(t, hull, 2)
	assert.Contains(t, hull, geometry.Point2D{X: 0, Y: 0})
	assert.Contains(t, hull, geometry.Point2D{X: 10, Y: 10})
}

func TestConvexHullNonDegenerateCloud(t *testing.T) {
	// Deterministic non-degenerate point set; no angular ties with respect
	// to the anchor.
	points := []geometry.Point2D{
		{X: 3, Y: 1}, {X: 9, Y: 2}, {X: 12, Y: 7}, {X: 10, Y: 13},
		{X: 4, Y: 14}, {X: 1, Y: 8}, {X: 6, Y: 6}, {X: 7, Y: 9},
		{X: 5, Y: 11}, {X: 8, Y: 4},
	}

	hull := geometry.ConvexHull(points)

	require.GreaterOrEqual(t, len(hull), 3)
	assert.True(t, geometry.IsConvex(hull))
	for _, p := range points {
		assert.True(t, containsOrOnHull(hull, p), "point %+v must be inside or on the hull", p)
	}

	// Hull vertices must come from the input.
	for _, v := range hull {
		assert.Contains(t, points, v)
	}
}

func TestConvexHullDeterministic(t *testing.T) {
	points := []geometry.Point2D{
		{X: 3, Y: 1}, {X: 9, Y: 2}, {X: 12, Y: 7}, {X: 10, Y: 13},
		{X: 4, Y: 14}, {X: 1, Y: 8}, {X: 6, Y: 6},
	}

	first := geometry.ConvexHull(points)
	second := geometry.ConvexHull(points)
	assert.Equal(t, first, second)
}

func TestPointInPolygon(t *testing.T) {
	square := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	tests := []struct {
		name     string
		point    geometry.Point2D
		expected bool
	}{
		{name: "Center", point: geometry.Point2D{X: 5, Y: 5}, expected: true},
		{name: "Outside right", point: geometry.Point2D{X: 15, Y: 5}, expected: false},
		{name: "Outside above", point: geometry.Point2D{X: 5, Y: -5}, expected: false},
		{name: "Near corner inside", point: geometry.Point2D{X: 1, Y: 1}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geometry.PointInPolygon(tt.point, square))
		})
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	assert.False(t, geometry.PointInPolygon(geometry.Point2D{X: 1, Y: 1}, nil))
	assert.False(t, geometry.PointInPolygon(geometry.Point2D{X: 1, Y: 1},
		[]geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 2}}))
}

func TestIsConvex(t *testing.T) {
	square := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	concave := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 4}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	assert.True(t, geometry.IsConvex(square))
	assert.False(t, geometry.IsConvex(concave))
	assert.False(t, geometry.IsConvex(square[:2]))
}
