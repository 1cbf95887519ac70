// Package geom implements the small numerical kernels shared by
// contour extraction and the stitching engine: zero-crossing
// interpolation, Euclidean norm, and splice cost (spec.md §4.2).
package geom

import "math"

// Vec2 is a 2D Cartesian point or vector.
type Vec2 struct {
	X, Y float64
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Norm returns the Euclidean norm sqrt(x²+y²).
func Norm(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LerpZero returns the point on the segment p0-p1 where the field,
// linearly interpolated between v0 at p0 and v1 at p1, crosses zero.
// v0 and v1 must lie on opposite sides of zero, with zero counted as
// non-negative (the binarization convention); otherwise LerpZero
// returns graph.ErrDomainError instead of a point (spec.md §4.2, §7
// DomainError).
//
// p0 and p1 share either a row (only X varies — LerpZero interpolates
// X and copies p1's Y) or a column (only Y varies, symmetric case), as
// produced by a grid's horizontal or vertical edge.
func LerpZero(p0, p1 Vec2, v0, v1 float64) (Vec2, error) {
	if sameSign(v0, v1) {
		return Vec2{}, errDomain
	}
	t := v0 / (v0 - v1)
	if p0.Y == p1.Y {
		return Vec2{X: p0.X + t*(p1.X-p0.X), Y: p0.Y}, nil
	}
	return Vec2{X: p0.X, Y: p0.Y + t*(p1.Y-p0.Y)}, nil
}

func sameSign(a, b float64) bool {
	return (a < 0) == (b < 0)
}

// SpliceCost returns the added perimeter of splicing directed edge
// I=(iA->iB) with directed edge J=(jA->jB): the smaller of the
// "straight" join (iA-jA, iB-jB) and the "crossed" join (iA-jB, iB-jA),
// each minus the two edges' own lengths (spec.md §4.2).
func SpliceCost(iA, iB, jA, jB Vec2) float64 {
	straight := Norm(iA.Sub(jA)) + Norm(iB.Sub(jB))
	crossed := Norm(iA.Sub(jB)) + Norm(iB.Sub(jA))
	own := Norm(iA.Sub(iB)) + Norm(jA.Sub(jB))

	if crossed < straight {
		return crossed - own
	}
	return straight - own
}

// CheaperJoin reports whether the "crossed" join (iA-jB, iB-jA) is the
// cheaper of the two splice patterns — the same comparison SpliceCost
// makes internally, exposed so stitch.splice can pick the matching
// topological rewrite under the "cheapest" policy (spec.md §9).
func CheaperJoin(iA, iB, jA, jB Vec2) (crossed bool) {
	straight := Norm(iA.Sub(jA)) + Norm(iB.Sub(jB))
	crossedCost := Norm(iA.Sub(jB)) + Norm(iB.Sub(jA))
	return crossedCost < straight
}
