package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/textkit-dev/textkit/fract"

// Rasterizer is an interface for 2D vector graphics rasterization
// to an alpha mask. Glyph outlines are passed as [sfnt.Segments],
// with the fractional drawing position given separately.
//
// Rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline is
	// drawn at the given fractional position (only the [0, 1) pixel
	// fraction of each coordinate is taken into account).
	//
	// The resulting mask has its bounds adjusted so that drawing it
	// at (0, 0) places the glyph at its origin: bounds.Min.Y is
	// typically negative, with y = 0 being the glyph's baseline.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// A value that tells rasterizers (and rasterizer configurations)
	// apart. Caches memoizing rasterized masks mix the signature into
	// their keys, so two rasterizers that can produce different masks
	// for one same outline must report different signatures.
	Signature() uint64
}

// The tracer methods every outline gets decomposed into.
type vectorTracer interface {
	MoveTo(fract.Point)
	LineTo(fract.Point)

	// Conic Bézier curve (also called quadratic). The first argument
	// is the control point, the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two arguments are the control
	// points, the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level helper to rasterize glyph masks.
//
// The returned mask is nil (with a nil error) when the outline
// contains no lines or curves, as happens with space glyphs.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, origin fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, origin)
	}
	return nil, nil // nothing to draw
}

// Feeds each segment of the glyph outline to the tracer.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segmentPoint(segment, 0))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segmentPoint(segment, 0))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segmentPoint(segment, 0), segmentPoint(segment, 1))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segmentPoint(segment, 0), segmentPoint(segment, 1), segmentPoint(segment, 2))
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func segmentPoint(segment sfnt.Segment, arg int) fract.Point {
	return fract.Point{
		X: fract.Unit(segment.Args[arg].X),
		Y: fract.Unit(segment.Args[arg].Y),
	}
}
