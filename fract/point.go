package fract

import "image"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Returns the result of adding the given point to the current one.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns the result of adding the given pair of units to the
// current point coordinates.
func (self Point) AddUnits(x, y Unit) Point {
	self.X += x
	self.Y += y
	return self
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Converts the point coordinates to ints, rounding half up, and
// returns them as an [image.Point] stdlib value.
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.X.ToInt(), self.Y.ToInt())
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
