// Package vec3 implements a small 3D Euclidean vector type with the
// arithmetic, scalar (dot) and vector (cross) products that astronomical
// code tends to need.
package vec3

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrIndexOutOfRange is returned by Index for anything other than 0, 1 or 2.
	ErrIndexOutOfRange = errors.New("index out of range 0:3")

	// ErrZeroVector is returned by Unit when the vector has zero length.
	ErrZeroVector = errors.New("cannot make a unit vector from a zero vector")
)

// Vec3 is a vector with Cartesian components X, Y and Z.
// The zero value is the vector (0,0,0).
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	a.AddInPlace(b)
	return a
}

// AddInPlace adds b to v and returns v.
func (v *Vec3) AddInPlace(b Vec3) *Vec3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

func (a Vec3) Sub(b Vec3) Vec3 {
	a.SubInPlace(b)
	return a
}

// SubInPlace subtracts b from v and returns v.
func (v *Vec3) SubInPlace(b Vec3) *Vec3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

func (v Vec3) Multiply(f float64) Vec3 {
	v.MultiplyInPlace(f)
	return v
}

func (v *Vec3) MultiplyInPlace(f float64) *Vec3 {
	v.X *= f
	v.Y *= f
	v.Z *= f
	return v
}

// Scale is Multiply with the scalar written first.
func Scale(f float64, v Vec3) Vec3 {
	return v.Multiply(f)
}

// Divide divides each component by f. Dividing by zero is not checked and
// gives the usual IEEE infinities or NaN.
func (v Vec3) Divide(f float64) Vec3 {
	v.DivideInPlace(f)
	return v
}

func (v *Vec3) DivideInPlace(f float64) *Vec3 {
	v.X /= f
	v.Y /= f
	v.Z /= f
	return v
}

func (v Vec3) Negate() Vec3 {
	return v.Multiply(-1)
}

// Index returns X, Y or Z for i = 0, 1 or 2.
func (v Vec3) Index(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("vec3: index %d: %w", i, ErrIndexOutOfRange)
}

// SquaredNorm returns the squared Euclidean length.
func (v Vec3) SquaredNorm() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Norm returns the Euclidean length.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Unit returns v scaled to unit length. Only an exactly zero length is
// rejected; tiny vectors are normalized as they are.
func (v Vec3) Unit() (Vec3, error) {
	l := v.Norm()
	if l == 0 {
		return Vec3{}, fmt.Errorf("vec3: unit: %w", ErrZeroVector)
	}
	return v.Divide(l), nil
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		(a.Y * b.Z) - (a.Z * b.Y),
		(a.Z * b.X) - (a.X * b.Z),
		(a.X * b.Y) - (a.Y * b.X),
	}
}

// Dot returns the scalar product of a and b.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

// Cross returns the vector product of a and b.
func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// String formats v as "(x,y,z)" using the shortest representation of each
// component.
func (v Vec3) String() string {
	return "(" + formatFloat(v.X) + "," + formatFloat(v.Y) + "," + formatFloat(v.Z) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
