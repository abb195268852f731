package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"

import "github.com/textkit-dev/textkit/fract"

var _ Rasterizer = (*SweepRasterizer)(nil)

// SweepRasterizer adapts [golang.org/x/image/vector.Rasterizer] to
// the [Rasterizer] interface. It's the rasterizer used by textkit
// unless a custom one is configured.
type SweepRasterizer struct {
	rasterizer vector.Rasterizer

	// the vector rasterizer expects coordinates in the positive
	// quadrant; this offset normalizes the outline points to it,
	// fractional drawing position included
	normOffset fract.Point
}

// Satisfies the [Rasterizer] interface. The signature of a sweep
// rasterizer is always zero; custom rasterizers built through type
// embedding should override this.
func (self *SweepRasterizer) Signature() uint64 { return 0 }

// Satisfies the [vectorTracer] outline decomposition.
func (self *SweepRasterizer) MoveTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.MoveTo(x, y)
}

func (self *SweepRasterizer) LineTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.LineTo(x, y)
}

func (self *SweepRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := control.AddPoint(self.normOffset).ToFloat32s()
	tx, ty := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

func (self *SweepRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	cax, cay := controlA.AddPoint(self.normOffset).ToFloat32s()
	cbx, cby := controlB.AddPoint(self.normOffset).ToFloat32s()
	tx, ty := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *SweepRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	bounds := outlineBounds(outline)

	// configure the mask dimensions and the normalization offset
	// that keeps every outline point in the positive quadrant
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	self.normOffset = fract.Point{
		X: -floorMinX + origin.X.FractShift(),
		Y: -floorMinY + origin.Y.FractShift(),
	}
	width  := (bounds.Max.X + self.normOffset.X).Ceil().ToIntFloor()
	height := (bounds.Max.Y + self.normOffset.Y).Ceil().ToIntFloor()
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// trace the outline and accumulate the winding into the mask.
	// the source is a uniform, so the sampling start point given to
	// Draw is irrelevant
	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask so the glyph origin falls at (0, 0)
	mask.Rect = mask.Rect.Add(image.Pt(floorMinX.ToIntFloor(), floorMinY.ToIntFloor()))
	return mask, nil
}

// Returns the bounding rect of the outline, in units.
func outlineBounds(outline sfnt.Segments) fract.Rect {
	fbounds := outline.Bounds()
	return fract.UnitsToRect(
		fract.Unit(fbounds.Min.X), fract.Unit(fbounds.Min.Y),
		fract.Unit(fbounds.Max.X), fract.Unit(fbounds.Max.Y),
	)
}
