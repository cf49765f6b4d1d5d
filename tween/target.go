package tween

// Target is the accessor surface the engine needs from an animated object.
// Named colour and float attributes report whether the attribute exists;
// requests against missing attributes are dropped at resolution time.
type Target interface {
	Frame() Rect
	SetFrame(Rect)
	Transform() Transform3D
	SetTransform(Transform3D)
	Opacity() float64
	SetOpacity(float64)
	ColorAttr(name string) (Color, bool)
	SetColorAttr(name string, c Color)
	FloatAttr(name string) (float64, bool)
	SetFloatAttr(name string, v float64)
}

// Resolver yields the live target for each tick. A tween never owns its
// target; once Resolve reports false the tween treats itself as finished.
type Resolver interface {
	Resolve() (Target, bool)
}

// Static wraps an always-live target, for callers that manage lifetime
// themselves.
type Static struct {
	T Target
}

// Resolve returns the wrapped target.
func (s Static) Resolve() (Target, bool) {
	return s.T, s.T != nil
}

// Timeline is the contract a parent group exposes to the tweens it owns.
// While a tween is owned by a timeline, the timeline's playhead decides
// when the tween starts instead of the tween's own delay and stagger.
type Timeline interface {
	TotalTime() float64
	Reversed() bool
	Duration() float64
	SetDuration(float64)
	Prepare()
}
