package fract

import "image"
import "testing"

func TestPointOps(t *testing.T) {
	point := IntsToPoint(2, -4)
	if point.X != 128 || point.Y != -256 {
		t.Fatalf("expected (128, -256), got (%d, %d)", point.X, point.Y)
	}

	point = point.AddUnits(32, 64)
	x, y := point.ToFloat64s()
	if x != 2.5 || y != -3 { t.Fatalf("expected (2.5, -3), got (%f, %f)", x, y) }

	point = point.AddPoint(UnitsToPoint(-32, 0))
	if got := point.String(); got != "(2, -3)" {
		t.Fatalf("expected \"(2, -3)\", got %q", got)
	}
	if got := point.ImagePoint(); got != image.Pt(2, -3) {
		t.Fatalf("expected image.Pt(2, -3), got %v", got)
	}
}

func TestRectOps(t *testing.T) {
	rect := UnitsToRect(0, -64, 128, 64)
	if rect.Width() != 128 || rect.Height() != 128 {
		t.Fatalf("expected 128x128, got %dx%d", rect.Width(), rect.Height())
	}
	if got := rect.ImageRect(); got != image.Rect(0, -1, 2, 1) {
		t.Fatalf("expected image.Rect(0, -1, 2, 1), got %v", got)
	}
	rect = PointsToRect(IntsToPoint(1, 1), IntsToPoint(3, 2))
	if got := rect.String(); got != "(1, 1)-(3, 2)" {
		t.Fatalf("unexpected rect string %q", got)
	}
}
