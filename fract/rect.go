package fract

import "image"

// A pair of [Point] values defining a rectangular region. Like
// [image.Rectangle], the Max point is not included in the rectangle.
// The behavior for malformed rectangles is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a pair of points.
func PointsToRect(min, max Point) Rect {
	return Rect{ Min: min, Max: max }
}

// Returns the width of the rect, in units.
func (self Rect) Width() Unit { return self.Max.X - self.Min.X }

// Returns the height of the rect, in units.
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Converts the rect coordinates to ints, rounding half up, and
// returns them as an [image.Rectangle] stdlib value.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rectangle{ Min: self.Min.ImagePoint(), Max: self.Max.ImagePoint() }
}

// Returns a textual representation of the rect.
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
