// Package vec provides 2D vector math for the game world.
// Vectors are immutable values; every operation returns a new Vec.
package vec

import "math"

// normEpsilon is the length below which a vector is treated as zero when normalizing.
const normEpsilon = 0.00001

// Vec is a point or direction in world space.
type Vec struct {
	X, Y float64
}

// New creates a vector from its components.
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec) Mul(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div divides component-wise.
func (v Vec) Div(o Vec) Vec {
	return Vec{X: v.X / o.X, Y: v.Y / o.Y}
}

// Dot returns the dot product.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// SqLen returns the squared length.
func (v Vec) SqLen() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length.
func (v Vec) Len() float64 {
	return math.Sqrt(v.SqLen())
}

// Norm returns the unit vector in the direction of v, or the zero vector
// if v is too short to have a meaningful direction.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l < normEpsilon {
		return Vec{}
	}
	return v.Scale(1.0 / l)
}

// Flip swaps the components.
func (v Vec) Flip() Vec {
	return Vec{X: v.Y, Y: v.X}
}

// Rot rotates v counter-clockwise by angle radians.
func (v Vec) Rot(angle float64) Vec {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Map applies f to both components.
func (v Vec) Map(f func(float64) float64) Vec {
	return Vec{X: f(v.X), Y: f(v.Y)}
}

// Dir returns the unit direction from one point to another.
func Dir(from, to Vec) Vec {
	return to.Sub(from).Norm()
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// LerpVec interpolates between a and b; t=0 gives a, t=1 gives b.
func LerpVec(a, b Vec, t float64) Vec {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Lerp interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Sign returns 1 for non-negative values and -1 otherwise.
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}
