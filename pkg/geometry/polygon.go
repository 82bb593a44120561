package geometry

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of a set of points using Graham scan.
// The anchor is the point with the maximum y-coordinate (ties broken by
// minimum x); remaining points are sorted by polar angle around the anchor.
// Returns the hull points in counter-clockwise order. Inputs of fewer than
// three points are returned unchanged.
func ConvexHull(points []Point2D) []Point2D {
	if len(points) < 3 {
		return points
	}

	// Make a copy to avoid modifying the input
	pts := make([]Point2D, len(points))
	copy(pts, points)

	// Find the anchor: highest y, leftmost on ties
	anchor := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y > pts[anchor].Y ||
			(pts[i].Y == pts[anchor].Y && pts[i].X < pts[anchor].X) {
			anchor = i
		}
	}

	// Swap to front
	pts[0], pts[anchor] = pts[anchor], pts[0]
	pivot := pts[0]

	// Sort remaining points by polar angle with respect to the pivot;
	// angle ties are broken by distance (nearer first)
	sorted := pts[1:]
	sort.Slice(sorted, func(i, j int) bool {
		ai := math.Atan2(sorted[i].Y-pivot.Y, sorted[i].X-pivot.X)
		aj := math.Atan2(sorted[j].Y-pivot.Y, sorted[j].X-pivot.X)
		if ai != aj {
			return ai < aj
		}
		return distSq(pivot, sorted[i]) < distSq(pivot, sorted[j])
	})

	// Build hull: pop while the last two hull points and the candidate
	// do not form a strict counter-clockwise turn
	hull := []Point2D{pivot}
	for _, p := range sorted {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func IsConvex(polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	n := len(polygon)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(
			polygon[i],
			polygon[(i+1)%n],
			polygon[(i+2)%n],
		)

		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}

			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return true
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
// An odd number of edge crossings along a horizontal ray counts as inside.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// distSq computes the squared distance between two points.
func distSq(a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
