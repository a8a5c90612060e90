package pattern

// MaskFunc adapts a plain function to VisibilityMask.
type MaskFunc func(ringFrac, segFrac float32) bool

func (f MaskFunc) IsVisible(ringFrac, segFrac float32) bool {
	return f(ringFrac, segFrac)
}

// Sweep reveals the surface around its segments up to Progress in [0,1].
type Sweep struct {
	Progress float32
}

func (s Sweep) IsVisible(_, segFrac float32) bool {
	return segFrac < s.Progress
}

// Band shows only the rings whose fraction lies in [Min, Max).
type Band struct {
	Min float32
	Max float32
}

func (b Band) IsVisible(ringFrac, _ float32) bool {
	return ringFrac >= b.Min && ringFrac < b.Max
}

// Invert flips another mask.
type Invert struct {
	Mask VisibilityMask
}

func (i Invert) IsVisible(ringFrac, segFrac float32) bool {
	return !Visible(i.Mask, ringFrac, segFrac)
}
