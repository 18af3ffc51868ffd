// Package geom defines plain 2D and 3D point aggregates for use by geometry code.
// The types carry no arithmetic.
package geom

import "github.com/aelliixx/alx"

// Vec2 is a point or vector in two dimensions.
type Vec2[T alx.Number] struct {
	X, Y T
}

// Vec3 is a point or vector in three dimensions.
type Vec3[T alx.Number] struct {
	X, Y, Z T
}

// Float32 and float64 instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)
