// ABOUTME: Resolver turns a Spec plus a container rect into a concrete Rect
// ABOUTME: Sizes resolve before positions; results are clamped inside the container

package layout

import "math"

// DefaultCeiling caps Auto sizes without a natural size at 90% of the container,
// so an auto-sized modal never hides its parent's border.
const DefaultCeiling = 0.9

// floorEpsilon absorbs float error such as 0.29*100 = 28.999999999999996.
const floorEpsilon = 1e-9

// Resolver resolves specs. The zero value uses DefaultCeiling.
type Resolver struct {
	// Ceiling is the fraction of the container an Auto size may fill when no
	// natural size is known. Values outside (0, 1] mean DefaultCeiling.
	Ceiling float64
}

var defaultResolver Resolver

// Resolve resolves spec with the default resolver.
func Resolve(spec Spec, container Rect, natural *Size) Rect {
	return defaultResolver.Resolve(spec, container, natural)
}

func (r Resolver) ceiling() float64 {
	if r.Ceiling <= 0 || r.Ceiling > 1 || math.IsNaN(r.Ceiling) {
		return DefaultCeiling
	}
	return r.Ceiling
}

// Limit returns the largest Auto size allowed in extent cells.
func (r Resolver) Limit(extent int) int {
	return max(0, scale(r.ceiling(), extent))
}

// Resolve is a pure function of its inputs: equal arguments always yield equal rects.
func (r Resolver) Resolve(spec Spec, container Rect, natural *Size) Rect {
	cw := max(0, container.Width)
	ch := max(0, container.Height)

	var nw, nh *int
	if natural != nil {
		nw, nh = &natural.Width, &natural.Height
	}

	w := r.size(spec.Width, spec.X, cw, nw)
	h := r.size(spec.Height, spec.Y, ch, nh)

	x := position(spec.X, cw, w)
	y := position(spec.Y, ch, h)

	// Clamp into the container: origin first, then the extent that remains.
	x = clamp(x, 0, cw)
	y = clamp(y, 0, ch)
	w = clamp(w, 0, cw-x)
	h = clamp(h, 0, ch-y)

	return Rect{
		X:      container.X + x,
		Y:      container.Y + y,
		Width:  w,
		Height: h,
	}
}

// size resolves a width or height against extent. pos is the same axis'
// position spec, used to find the remaining extent for Auto.
func (r Resolver) size(d, pos Dim, extent int, natural *int) int {
	switch d.kind {
	case kindAbsolute:
		return clamp(d.n, 0, extent)
	case kindRelative:
		return clamp(scale(d.f, extent), 0, extent)
	}

	if natural != nil {
		return clamp(*natural, 0, extent)
	}

	remaining := extent
	if pos.kind == kindAbsolute {
		remaining -= pos.n
	}
	return clamp(min(remaining, scale(r.ceiling(), extent)), 0, extent)
}

// position resolves an x or y offset from the container origin.
func position(d Dim, extent, size int) int {
	switch d.kind {
	case kindAbsolute:
		return d.n
	case kindRelative:
		return scale(d.f, extent)
	default:
		return max(0, (extent-size)/2)
	}
}

func scale(f float64, extent int) int {
	return int(math.Floor(f*float64(extent) + floorEpsilon))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(hi, v))
}
