package koch

// ViewOption configures a View during creation.
//
// Example:
//
//	// Defaults: zoom 1.0, depth 4, base size 600.
//	v := koch.NewView()
//
//	// Smaller snowflake, flat triangle to start with.
//	v := koch.NewView(koch.WithBaseSize(300), koch.WithDepth(0))
type ViewOption func(*View)

// WithBaseSize sets the side length of the base triangle at zoom 1.0.
// Non-positive sizes are ignored.
func WithBaseSize(size float64) ViewOption {
	return func(v *View) {
		if size > 0 {
			v.baseSize = size
		}
	}
}

// WithDepth sets the initial recursion depth, clamped to
// [MinDepth, MaxDepth].
func WithDepth(depth int) ViewOption {
	return func(v *View) {
		v.depth = MinDepth
		v.AdjustDepth(depth)
	}
}

// WithZoom sets the initial zoom factor, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float64) ViewOption {
	return func(v *View) {
		v.zoom = clamp(zoom, MinZoom, MaxZoom)
	}
}
