package plot

import "math"

// Vertical clamp window policy: the visible span always reaches at
// least ±MinHalfSpan so near-constant functions keep zero in view, and
// never exceeds ±MaxSpan so one near-pole sample cannot flatten the
// rest of the curve.
const (
	MinHalfSpan = 1.0
	MaxSpan     = 20.0
)

// Bounds is the data-space window the canvas displays. MinX/MaxX come
// from the directive's domain; MinY/MaxY are derived from the samples
// and clamped.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func computeBounds(points []Point, minX, maxX float64) Bounds {
	rawMin, rawMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < rawMin {
			rawMin = p.Y
		}
		if p.Y > rawMax {
			rawMax = p.Y
		}
	}
	return Bounds{
		MinX: minX,
		MaxX: maxX,
		MinY: math.Max(math.Min(rawMin, -MinHalfSpan), -MaxSpan),
		MaxY: math.Min(math.Max(rawMax, MinHalfSpan), MaxSpan),
	}
}

// Geometry is a drawing surface: total size plus interior padding, in
// device units.
type Geometry struct {
	Width, Height float64
	Padding       float64
}

// SVGGeometry is the fixed chart size for SVG output.
var SVGGeometry = Geometry{Width: 420, Height: 260, Padding: 24}

// DevicePoint is a mapped canvas coordinate.
type DevicePoint struct {
	X, Y float64
}

// MapX linearly maps a data-space x into the padded interior.
func (g Geometry) MapX(b Bounds, x float64) float64 {
	return g.Padding + (x-b.MinX)/(b.MaxX-b.MinX)*(g.Width-2*g.Padding)
}

// MapY maps a data-space y, re-clamping into the window first. The axis
// is inverted: device origin is top-left, math convention bottom-left.
func (g Geometry) MapY(b Bounds, y float64) float64 {
	y = math.Min(math.Max(y, b.MinY), b.MaxY)
	return g.Height - g.Padding - (y-b.MinY)/(b.MaxY-b.MinY)*(g.Height-2*g.Padding)
}

// ClampedYs returns the sample y-values clamped into the vertical
// window, in order. Quick character charts that take a bare series
// consume this instead of the raw samples, so a near-pole spike cannot
// flatten the rest of the curve.
func (p *Plot) ClampedYs() []float64 {
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		ys[i] = math.Min(math.Max(pt.Y, p.Bounds.MinY), p.Bounds.MaxY)
	}
	return ys
}

// MapPoints maps samples to device space, preserving order.
func (g Geometry) MapPoints(b Bounds, points []Point) []DevicePoint {
	out := make([]DevicePoint, len(points))
	for i, p := range points {
		out[i] = DevicePoint{X: g.MapX(b, p.X), Y: g.MapY(b, p.Y)}
	}
	return out
}
