package tween

// changeOp enumerates the symbolic property requests a caller can declare.
type changeOp int

const (
	opX changeOp = iota
	opY
	opPosition
	opShift
	opWidth
	opHeight
	opSize
	opTranslate
	opScale
	opScaleXY
	opRotate
	opRotateXY
	opMatrix
	opFade
	opColor
	opAttr
)

// A Change is one declarative property request. In a tween built with New
// the change values are destinations; in one built with NewFrom they are
// starting values and the destination is the live target state.
type Change struct {
	op    changeOp
	a, b  float64
	m     Transform3D
	color Color
	name  string
}

// X moves the target's horizontal offset.
func X(v float64) Change { return Change{op: opX, a: v} }

// Y moves the target's vertical offset.
func Y(v float64) Change { return Change{op: opY, a: v} }

// Position moves the target to an absolute origin.
func Position(x, y float64) Change { return Change{op: opPosition, a: x, b: y} }

// Shift moves the target relative to its origin at setup time.
func Shift(dx, dy float64) Change { return Change{op: opShift, a: dx, b: dy} }

// Width resizes the target's width alone.
func Width(v float64) Change { return Change{op: opWidth, a: v} }

// Height resizes the target's height alone.
func Height(v float64) Change { return Change{op: opHeight, a: v} }

// Resize sets an absolute size.
func Resize(w, h float64) Change { return Change{op: opSize, a: w, b: h} }

// Translate composes a translation onto the target's transform.
func Translate(dx, dy float64) Change { return Change{op: opTranslate, a: dx, b: dy} }

// Scale composes a uniform scale onto the target's transform.
func Scale(s float64) Change { return Change{op: opScale, a: s} }

// ScaleXY composes a per-axis scale onto the target's transform.
func ScaleXY(sx, sy float64) Change { return Change{op: opScaleXY, a: sx, b: sy} }

// Rotate composes a rotation about the z axis onto the target's transform.
// The angle is in radians.
func Rotate(rad float64) Change { return Change{op: opRotate, a: rad} }

// RotateXY composes rotations about the x and y axes onto the target's
// transform.
func RotateXY(xrad, yrad float64) Change { return Change{op: opRotateXY, a: xrad, b: yrad} }

// Matrix replaces the target's transform outright instead of composing.
func Matrix(m Transform3D) Change { return Change{op: opMatrix, m: m} }

// Fade changes the target's opacity.
func Fade(v float64) Change { return Change{op: opFade, a: v} }

// Paint changes a named colour attribute, such as the background colour.
func Paint(name string, c Color) Change { return Change{op: opColor, name: name, color: c} }

// Attr changes an arbitrary named float attribute resolved by dynamic
// lookup on the target. Requests for attributes the target does not expose
// are dropped.
func Attr(name string, v float64) Change { return Change{op: opAttr, name: name, a: v} }

// State is a tween's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateDead
)

// A Tween drives a set of properties on one target from start to end
// values over a duration. It never owns the target; when the target goes
// away the tween reports itself removable on its next advance.
type Tween struct {
	target Resolver

	duration    float64
	elapsed     float64
	delay       float64
	stagger     float64
	repeatDelay float64
	timeScale   float64

	reversed bool
	fromMode bool
	state    State

	props map[string]Property
	order []Property

	timeline  Timeline
	startTime float64
	runner    *Runner

	easing Easing
	spring *Spring
}

// New creates a tween whose change values are destinations; starting
// values are captured from the live target on the first frame. Properties
// are resolved once, here.
func New(target Resolver, duration float64, changes ...Change) *Tween {
	return newTween(target, duration, false, changes)
}

// NewFrom creates a tween whose change values are starting values; the
// live target state at the first frame becomes the destination.
func NewFrom(target Resolver, duration float64, changes ...Change) *Tween {
	return newTween(target, duration, true, changes)
}

func newTween(target Resolver, duration float64, fromMode bool, changes []Change) *Tween {
	tw := new(Tween)
	tw.target = target
	tw.duration = duration
	tw.timeScale = 1
	tw.fromMode = fromMode
	tw.easing = Linear
	tw.props = make(map[string]Property)
	tw.resolve(changes)
	return tw
}

// internals exposes the shared half of a property variant to the resolver.
type internals interface {
	Property
	base() *baseProperty
}

func (b *baseProperty) base() *baseProperty { return b }

func (b *baseProperty) setEndpoint(v Vectorized, fromMode bool) {
	if fromMode {
		b.from = v
		b.hasFrom = true
	} else {
		b.to = v
		b.hasTo = true
	}
}

func (b *baseProperty) endpoint(fromMode bool) (Vectorized, bool) {
	if fromMode {
		return b.from, b.hasFrom
	}
	return b.to, b.hasTo
}

// resolve turns the declared changes into concrete properties. Requests
// whose live value cannot be read from the target are dropped. When both a
// position-kind and a size-kind property come out of resolution they are
// merged into a single frame property.
func (tw *Tween) resolve(changes []Change) {
	t, alive := tw.target.Resolve()
	if !alive {
		return
	}
	for _, ch := range changes {
		tw.applyChange(t, ch)
	}
	tw.mergeFrame(t)
}

func (tw *Tween) adopt(p internals) internals {
	key := p.Key()
	if existing, ok := tw.props[key]; ok {
		return existing.(internals)
	}
	tw.props[key] = p
	tw.order = append(tw.order, p)
	return p
}

func (tw *Tween) drop(key string) {
	p, ok := tw.props[key]
	if !ok {
		return
	}
	delete(tw.props, key)
	for i, q := range tw.order {
		if q == p {
			tw.order = append(tw.order[:i], tw.order[i+1:]...)
			break
		}
	}
}

func (tw *Tween) applyChange(t Target, ch Change) {
	switch ch.op {
	case opX:
		p := tw.adopt(newScalarProperty(tw, attrX))
		p.base().setEndpoint(Scalar(ch.a).Vectorize(), tw.fromMode)
	case opY:
		p := tw.adopt(newScalarProperty(tw, attrY))
		p.base().setEndpoint(Scalar(ch.a).Vectorize(), tw.fromMode)
	case opWidth:
		p := tw.adopt(newScalarProperty(tw, attrWidth))
		p.base().setEndpoint(Scalar(ch.a).Vectorize(), tw.fromMode)
	case opHeight:
		p := tw.adopt(newScalarProperty(tw, attrHeight))
		p.base().setEndpoint(Scalar(ch.a).Vectorize(), tw.fromMode)
	case opFade:
		p := tw.adopt(newScalarProperty(tw, attrOpacity))
		p.base().setEndpoint(Scalar(ch.a).Vectorize(), tw.fromMode)
	case opPosition:
		p := tw.adopt(newPointProperty(tw))
		p.base().setEndpoint(Point{X: ch.a, Y: ch.b}.Vectorize(), tw.fromMode)
	case opShift:
		// Destination is live origin plus the shift, computed once here.
		o := t.Frame().Origin
		p := tw.adopt(newPointProperty(tw))
		p.base().setEndpoint(Point{X: o.X + ch.a, Y: o.Y + ch.b}.Vectorize(), tw.fromMode)
	case opSize:
		p := tw.adopt(newSizeProperty(tw))
		p.base().setEndpoint(Size{Width: ch.a, Height: ch.b}.Vectorize(), tw.fromMode)
	case opTranslate, opScale, opScaleXY, opRotate, opRotateXY, opMatrix:
		tw.applyTransformChange(t, ch)
	case opColor:
		if _, ok := t.ColorAttr(ch.name); !ok {
			return
		}
		model := ch.color.model()
		p := tw.adopt(newColorProperty(tw, ch.name, model))
		c := ch.color
		c.Model = p.(*colorProperty).model
		p.base().setEndpoint(c.Vectorize(), tw.fromMode)
	case opAttr:
		if _, ok := t.FloatAttr(ch.name); !ok {
			return
		}
		p := tw.adopt(newKeyedProperty(tw, ch.name))
		p.base().setEndpoint(Vectorized{Kind: KindNumeric, Components: []float64{ch.a}}, tw.fromMode)
	}
}

// applyTransformChange composes translate/scale/rotate requests onto the
// existing endpoint matrix in the order they were declared; an explicit
// matrix overwrites instead.
func (tw *Tween) applyTransformChange(t Target, ch Change) {
	p := tw.adopt(newTransformProperty(tw))
	b := p.base()

	if ch.op == opMatrix {
		b.setEndpoint(ch.m.Vectorize(), tw.fromMode)
		return
	}

	base := t.Transform()
	if v, ok := b.endpoint(tw.fromMode); ok {
		base = Reconstruct(v).(Transform3D)
	}

	switch ch.op {
	case opTranslate:
		base = base.Translated(ch.a, ch.b, 0)
	case opScale:
		base = base.Scaled(ch.a, ch.a, 1)
	case opScaleXY:
		base = base.Scaled(ch.a, ch.b, 1)
	case opRotate:
		base = base.RotatedZ(ch.a)
	case opRotateXY:
		base = base.RotatedX(ch.a).RotatedY(ch.b)
	}
	b.setEndpoint(base.Vectorize(), tw.fromMode)
}

// mergeFrame replaces co-requested position and size properties with one
// frame property so origin and size apply atomically in a single write.
func (tw *Tween) mergeFrame(t Target) {
	if _, ok := tw.props["size"]; !ok {
		return
	}
	_, hasPos := tw.props["position"]
	_, hasX := tw.props["x"]
	_, hasY := tw.props["y"]
	if !hasPos && !hasX && !hasY {
		return
	}

	live := t.Frame()
	origin := live.Origin
	size := live.Size

	if p, ok := tw.props["position"]; ok {
		if v, set := p.(internals).base().endpoint(tw.fromMode); set {
			origin = Reconstruct(v).(Point)
		}
	}
	if p, ok := tw.props["x"]; ok {
		if v, set := p.(internals).base().endpoint(tw.fromMode); set {
			origin.X = v.Components[0]
		}
	}
	if p, ok := tw.props["y"]; ok {
		if v, set := p.(internals).base().endpoint(tw.fromMode); set {
			origin.Y = v.Components[0]
		}
	}
	if v, set := tw.props["size"].(internals).base().endpoint(tw.fromMode); set {
		size = Reconstruct(v).(Size)
	}

	tw.drop("position")
	tw.drop("x")
	tw.drop("y")
	tw.drop("size")

	rect := tw.adopt(newRectProperty(tw))
	rect.base().setEndpoint(Rect{Origin: origin, Size: size}.Vectorize(), tw.fromMode)
}

// startOffset is how much time must elapse before the first property
// frame. The repeat delay participates in the sum, though repeat cycling
// itself is not implemented.
func (tw *Tween) startOffset() float64 {
	return tw.delay + tw.stagger + tw.repeatDelay
}

// TotalDuration is the start offset plus the animation duration.
func (tw *Tween) TotalDuration() float64 {
	return tw.startOffset() + tw.duration
}

// Play resets every property's progress, re-derives the first-frame
// values, marks the tween running and registers it with its runner.
func (tw *Tween) Play() {
	if tw.state == StateRunning || tw.state == StateDead {
		return
	}
	tw.state = StateRunning
	tw.elapsed = 0
	at := 0.0
	if tw.reversed {
		tw.elapsed = tw.TotalDuration()
		at = tw.duration
	}
	if t, alive := tw.target.Resolve(); alive {
		for _, p := range tw.order {
			p.Reset(tw.reversed)
			p.Seek(t, at)
		}
	}
	if tw.runner != nil {
		tw.runner.Add(tw)
	}
}

// Pause suspends advancement until Resume.
func (tw *Tween) Pause() {
	if tw.state == StateRunning {
		tw.state = StatePaused
	}
}

// Resume continues a paused tween.
func (tw *Tween) Resume() {
	if tw.state == StatePaused {
		tw.state = StateRunning
	}
}

// Reverse flips playback direction and re-enters the running drive loop.
func (tw *Tween) Reverse() {
	tw.reversed = true
	tw.rerun()
}

// Forward restores forward playback and re-enters the running drive loop.
func (tw *Tween) Forward() {
	tw.reversed = false
	tw.rerun()
}

func (tw *Tween) rerun() {
	if tw.state == StatePaused || tw.state == StateCompleted {
		tw.state = StateRunning
		if tw.runner != nil {
			tw.runner.Add(tw)
		}
	}
}

// Seek jumps the playhead to an offset within the animation, bypassing
// incremental advancement.
func (tw *Tween) Seek(at float64) {
	tw.elapsed = tw.startOffset() + at
	if tw.elapsed < 0 {
		tw.elapsed = 0
	}
	if max := tw.TotalDuration(); tw.elapsed > max {
		tw.elapsed = max
	}
	if t, alive := tw.target.Resolve(); alive {
		for _, p := range tw.order {
			p.Seek(t, at)
		}
	}
}

// Kill forces the tween into the terminal dead state and deregisters it.
// Safe to call from within a tick.
func (tw *Tween) Kill() {
	tw.state = StateDead
	if tw.runner != nil {
		tw.runner.Remove(tw)
	}
}

// Advance is the per-frame driver. It returns true when the tween should
// be removed from its runner: the target is gone, the tween is not
// running, or every owned property reached its terminal edge this call.
func (tw *Tween) Advance(dt float64, force bool) bool {
	if tw.state != StateRunning && tw.state != StatePaused {
		return true
	}
	t, alive := tw.target.Resolve()
	if !alive {
		tw.state = StateCompleted
		return true
	}
	if tw.state == StatePaused && !force {
		return false
	}

	// While owned by a timeline, its playhead decides when we start.
	if tw.timeline != nil {
		if tw.timeline.Reversed() {
			if tw.timeline.TotalTime() > tw.startTime+tw.TotalDuration() {
				return false
			}
		} else if tw.timeline.TotalTime() < tw.startTime {
			return false
		}
	}

	dt *= tw.timeScale
	if tw.reversed {
		dt = -dt
	}

	offset := tw.startOffset()
	total := offset + tw.duration
	prev := tw.elapsed
	tw.elapsed += dt
	if tw.elapsed < 0 {
		tw.elapsed = 0
	}
	if tw.elapsed > total {
		tw.elapsed = total
	}

	if tw.elapsed < offset {
		if tw.reversed {
			// Walking back past the start means we are finished.
			tw.state = StateCompleted
			return true
		}
		return false
	}

	pdt := clampTime(tw.elapsed-offset, tw.duration) - clampTime(prev-offset, tw.duration)

	done := true
	for _, p := range tw.order {
		if !p.Advance(t, pdt, tw.reversed) {
			done = false
		}
	}
	if done {
		tw.state = StateCompleted
	}
	return done
}

func clampTime(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// State reports the tween's lifecycle position.
func (tw *Tween) State() State {
	return tw.state
}

// Reversed reports the playback direction.
func (tw *Tween) Reversed() bool {
	return tw.reversed
}

// Duration reports the animation duration, excluding the start offset.
func (tw *Tween) Duration() float64 {
	return tw.duration
}

// SetDuration changes the duration. Owned properties pick it up on their
// next frame; a parent timeline is told the tween's new end time.
func (tw *Tween) SetDuration(d float64) {
	tw.duration = d
	if tw.timeline != nil {
		tw.timeline.SetDuration(tw.startTime + tw.TotalDuration())
	}
}

// Elapsed reports accumulated time including the start offset.
func (tw *Tween) Elapsed() float64 {
	return tw.elapsed
}

// Progress reports normalized progress through the animation in [0, 1].
func (tw *Tween) Progress() float64 {
	if tw.duration <= 0 {
		return 1
	}
	return clampTime(tw.elapsed-tw.startOffset(), tw.duration) / tw.duration
}

// Keys lists the resolved property keys in declaration order.
func (tw *Tween) Keys() []string {
	keys := make([]string, len(tw.order))
	for i, p := range tw.order {
		keys[i] = p.Key()
	}
	return keys
}

// SetDelay sets the time to wait before the first property frame.
func (tw *Tween) SetDelay(d float64) {
	tw.delay = d
}

// SetStagger sets an additional start offset, used to fan out a batch of
// tweens relative to each other.
func (tw *Tween) SetStagger(s float64) {
	tw.stagger = s
}

// SetRepeatDelay sets the pause before a repeat cycle. It extends the
// start offset; repeat cycling itself is not implemented.
func (tw *Tween) SetRepeatDelay(d float64) {
	tw.repeatDelay = d
}

// SetTimeScale multiplies every incoming time delta.
func (tw *Tween) SetTimeScale(s float64) {
	tw.timeScale = s
}

// SetEase replaces the easing curve on the tween and every owned property.
func (tw *Tween) SetEase(e Easing) {
	tw.easing = e
	tw.spring = nil
	for _, p := range tw.order {
		b := p.(internals).base()
		b.easing = e
		b.spring = nil
	}
}

// SetSpring replaces easing with spring-driven progress on the tween and
// every owned property.
func (tw *Tween) SetSpring(s Spring) {
	tw.spring = &s
	for _, p := range tw.order {
		p.(internals).base().spring = s.newState()
	}
}

func (tw *Tween) newSpringState() *springState {
	if tw.spring == nil {
		return nil
	}
	return tw.spring.newState()
}

// SetRunner sets the registry Play and Kill register with.
func (tw *Tween) SetRunner(r *Runner) {
	tw.runner = r
}

// SetTimeline hands ownership of scheduling to a parent timeline; start is
// the tween's offset on the timeline's playhead.
func (tw *Tween) SetTimeline(tl Timeline, start float64) {
	tw.timeline = tl
	tw.startTime = start
	if tl != nil {
		tl.Prepare()
	}
}
