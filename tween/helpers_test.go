package tween

import "math"

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// fakeTarget is an in-memory target that counts writes.
type fakeTarget struct {
	frame     Rect
	transform Transform3D
	opacity   float64
	colors    map[string]Color
	attrs     map[string]float64

	frameWrites   int
	opacityWrites int
	colorWrites   int
	attrWrites    int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		transform: Identity3D(),
		opacity:   1,
		colors:    make(map[string]Color),
		attrs:     make(map[string]float64),
	}
}

func (f *fakeTarget) Frame() Rect { return f.frame }
func (f *fakeTarget) SetFrame(r Rect) {
	f.frame = r
	f.frameWrites++
}
func (f *fakeTarget) Transform() Transform3D     { return f.transform }
func (f *fakeTarget) SetTransform(m Transform3D) { f.transform = m }
func (f *fakeTarget) Opacity() float64           { return f.opacity }
func (f *fakeTarget) SetOpacity(v float64) {
	f.opacity = v
	f.opacityWrites++
}
func (f *fakeTarget) ColorAttr(name string) (Color, bool) {
	c, ok := f.colors[name]
	return c, ok
}
func (f *fakeTarget) SetColorAttr(name string, c Color) {
	f.colors[name] = c
	f.colorWrites++
}
func (f *fakeTarget) FloatAttr(name string) (float64, bool) {
	v, ok := f.attrs[name]
	return v, ok
}
func (f *fakeTarget) SetFloatAttr(name string, v float64) {
	f.attrs[name] = v
	f.attrWrites++
}

func (f *fakeTarget) writes() int {
	return f.frameWrites + f.opacityWrites + f.colorWrites + f.attrWrites
}

// fakeResolver lets tests release a target mid-flight.
type fakeResolver struct {
	target *fakeTarget
	alive  bool
}

func (r *fakeResolver) Resolve() (Target, bool) {
	if !r.alive {
		return nil, false
	}
	return r.target, true
}

// fakeTimeline is a controllable parent group.
type fakeTimeline struct {
	total    float64
	reversed bool
	duration float64
	prepared int
}

func (tl *fakeTimeline) TotalTime() float64    { return tl.total }
func (tl *fakeTimeline) Reversed() bool        { return tl.reversed }
func (tl *fakeTimeline) Duration() float64     { return tl.duration }
func (tl *fakeTimeline) SetDuration(d float64) { tl.duration = d }
func (tl *fakeTimeline) Prepare()              { tl.prepared++ }
