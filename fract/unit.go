package fract

import "math"
import "strconv"

// A fixed point value with 26 bits for the integer part and 6 bits
// for the fractional part. One pixel equals 64 units: var size Unit
// = 64 stores 1.0, and 96 stores 1.5.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
type Unit int32

// Unit range and granularity constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One     Unit = 64 // fract.One.ToInt() == 1
	MaxInt  int  = +33554431
	MinInt  int  = -33554432
	Delta float64 = 0.015625 // 1.0/64.0, the smallest representable step
)

// Fast conversion from int to [Unit]. If the value falls outside
// the [[MinInt], [MaxInt]] representable range, the result is
// undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest [Unit], rounding up in case of
// ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	return Unit(math.Floor(value*64 + 0.5))
}

// Returns whether the unit is a whole number or has a fractional part.
func (self Unit) IsWhole() bool { return self & 0x3F == 0 }

// Returns only the fractional part of the unit, with its sign
// preserved (e.g. fract.Unit(-65).Fract() == -1).
func (self Unit) Fract() Unit { return self % 64 }

// Returns the fractional part of the unit shifted to [0, 64), as
// used for subpixel normalization: -0.25 and +0.75 both report 48.
func (self Unit) FractShift() Unit {
	fract := self % 64
	if fract < 0 { fract += 64 }
	return fract
}

// Returns the unit rounded down to its closest whole value.
func (self Unit) Floor() Unit { return self & ^Unit(0x3F) }

// Returns the unit rounded up to its closest whole value.
func (self Unit) Ceil() Unit { return (self + 0x3F).Floor() }

// Fixed point multiplication, rounding half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

// Rescales the unit from one em size to another, rounding half up.
// Font metrics are stored in font units relative to the em square;
// this converts them to a concrete text size.
func (self Unit) Rescale(from, to Unit) Unit {
	return Unit((int64(self)*int64(to) + int64(from)/2)/int64(from))
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int { return self.ToIntHalfUp() }

// Fastest conversion from [Unit] to int, discarding any fraction.
func (self Unit) ToIntFloor() int { return int(self) >> 6 }

func (self Unit) ToIntCeil() int { return (int(self) + 63) >> 6 }

func (self Unit) ToIntHalfUp() int { return (int(self) + 32) >> 6 }

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }

func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Returns a textual representation of the unit (e.g.: "2.5").
func (self Unit) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
