package tween

// A Property is a single interpolated attribute of a target with its own
// from/to pair and progress state. Exactly one Property exists per
// (target, key) pair within one Tween.
type Property interface {
	// Key identifies the property kind within its tween.
	Key() string
	// Advance moves progress by a signed time delta, applies the
	// interpolated value to the target and reports whether the property
	// has reached its terminal edge for the current direction.
	Advance(t Target, dt float64, reversed bool) bool
	// Reset returns progress to the direction-appropriate start without
	// touching the from/to pair.
	Reset(reversed bool)
	// Prepare performs one-time setup on the first frame after a
	// (re)start, capturing a live snapshot for any endpoint the caller
	// did not supply.
	Prepare(t Target)
	// Seek jumps progress directly, re-deriving and re-applying the
	// interpolated value.
	Seek(t Target, at float64)
	// Elapsed reports progress in seconds.
	Elapsed() float64
}

// applier is the per-variant half of a property: reading the live value
// and writing an interpolated one back.
type applier interface {
	snapshot(t Target) Vectorized
	apply(t Target, v Vectorized)
}

// baseProperty carries the state every variant shares.
type baseProperty struct {
	tw       *Tween
	key      string
	from, to Vectorized
	hasFrom  bool
	hasTo    bool
	current  Vectorized
	elapsed  float64
	easing   Easing
	spring   *springState
	ready    bool
}

func (b *baseProperty) Key() string {
	return b.key
}

func (b *baseProperty) Elapsed() float64 {
	return b.elapsed
}

func (b *baseProperty) Reset(reversed bool) {
	if reversed {
		b.elapsed = b.tw.duration
	} else {
		b.elapsed = 0
	}
	if b.spring != nil {
		b.spring.reset(b.fraction())
	}
}

func (b *baseProperty) fraction() float64 {
	if b.tw.duration <= 0 {
		return 1
	}
	return b.elapsed / b.tw.duration
}

func (b *baseProperty) prepare(a applier, t Target) {
	if b.ready {
		return
	}
	if !b.hasFrom {
		b.from = a.snapshot(t)
		b.hasFrom = true
	}
	if !b.hasTo {
		b.to = a.snapshot(t)
		b.hasTo = true
	}
	b.ready = true
}

func (b *baseProperty) advance(a applier, t Target, dt float64, reversed bool) bool {
	b.prepare(a, t)

	d := b.tw.duration
	b.elapsed += dt
	if b.elapsed > d {
		b.elapsed = d
	}
	if b.elapsed < 0 {
		b.elapsed = 0
	}

	eased := b.fraction()
	if b.spring != nil {
		eased = b.spring.follow(eased, dt)
	} else if b.easing != nil {
		eased = b.easing(eased)
	}
	b.current = b.from.Lerp(b.to, eased)
	a.apply(t, b.current)

	if reversed {
		return b.elapsed <= 0
	}
	return b.elapsed >= d
}

func (b *baseProperty) seek(a applier, t Target, at float64) {
	b.prepare(a, t)

	b.elapsed = at
	if b.elapsed > b.tw.duration {
		b.elapsed = b.tw.duration
	}
	if b.elapsed < 0 {
		b.elapsed = 0
	}

	eased := b.fraction()
	if b.spring != nil {
		eased = b.spring.jump(eased)
	} else if b.easing != nil {
		eased = b.easing(eased)
	}
	b.current = b.from.Lerp(b.to, eased)
	a.apply(t, b.current)
}

// scalarAttr selects which float attribute a scalar property drives.
type scalarAttr int

const (
	attrX scalarAttr = iota
	attrY
	attrWidth
	attrHeight
	attrOpacity
)

var scalarKeys = map[scalarAttr]string{
	attrX:       "x",
	attrY:       "y",
	attrWidth:   "width",
	attrHeight:  "height",
	attrOpacity: "opacity",
}

// scalarProperty drives a single float attribute of the target.
type scalarProperty struct {
	baseProperty
	attr scalarAttr
}

func newScalarProperty(tw *Tween, attr scalarAttr) *scalarProperty {
	p := new(scalarProperty)
	p.tw = tw
	p.key = scalarKeys[attr]
	p.attr = attr
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *scalarProperty) snapshot(t Target) Vectorized {
	f := t.Frame()
	switch p.attr {
	case attrX:
		return Scalar(f.Origin.X).Vectorize()
	case attrY:
		return Scalar(f.Origin.Y).Vectorize()
	case attrWidth:
		return Scalar(f.Size.Width).Vectorize()
	case attrHeight:
		return Scalar(f.Size.Height).Vectorize()
	default:
		return Scalar(t.Opacity()).Vectorize()
	}
}

func (p *scalarProperty) apply(t Target, v Vectorized) {
	value := v.Components[0]
	if p.attr == attrOpacity {
		t.SetOpacity(value)
		return
	}
	f := t.Frame()
	switch p.attr {
	case attrX:
		f.Origin.X = value
	case attrY:
		f.Origin.Y = value
	case attrWidth:
		f.Size.Width = value
	case attrHeight:
		f.Size.Height = value
	}
	t.SetFrame(f)
}

func (p *scalarProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *scalarProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *scalarProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// pointProperty drives the target frame's origin.
type pointProperty struct {
	baseProperty
}

func newPointProperty(tw *Tween) *pointProperty {
	p := new(pointProperty)
	p.tw = tw
	p.key = "position"
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *pointProperty) snapshot(t Target) Vectorized {
	return t.Frame().Origin.Vectorize()
}

func (p *pointProperty) apply(t Target, v Vectorized) {
	f := t.Frame()
	f.Origin = Reconstruct(v).(Point)
	t.SetFrame(f)
}

func (p *pointProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *pointProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *pointProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// sizeProperty drives the target frame's size.
type sizeProperty struct {
	baseProperty
}

func newSizeProperty(tw *Tween) *sizeProperty {
	p := new(sizeProperty)
	p.tw = tw
	p.key = "size"
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *sizeProperty) snapshot(t Target) Vectorized {
	return t.Frame().Size.Vectorize()
}

func (p *sizeProperty) apply(t Target, v Vectorized) {
	f := t.Frame()
	f.Size = Reconstruct(v).(Size)
	t.SetFrame(f)
}

func (p *sizeProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *sizeProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *sizeProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// rectProperty drives the whole frame at once. It only comes into being
// when both a position-kind and a size-kind change are requested on the
// same target, so origin and size land atomically in one write per frame.
type rectProperty struct {
	baseProperty
}

func newRectProperty(tw *Tween) *rectProperty {
	p := new(rectProperty)
	p.tw = tw
	p.key = "frame"
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *rectProperty) snapshot(t Target) Vectorized {
	return t.Frame().Vectorize()
}

func (p *rectProperty) apply(t Target, v Vectorized) {
	t.SetFrame(Reconstruct(v).(Rect))
}

func (p *rectProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *rectProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *rectProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// transformProperty drives the target's 3D transform matrix.
type transformProperty struct {
	baseProperty
}

func newTransformProperty(tw *Tween) *transformProperty {
	p := new(transformProperty)
	p.tw = tw
	p.key = "transform"
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *transformProperty) snapshot(t Target) Vectorized {
	return t.Transform().Vectorize()
}

func (p *transformProperty) apply(t Target, v Vectorized) {
	t.SetTransform(Reconstruct(v).(Transform3D))
}

func (p *transformProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *transformProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *transformProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// colorProperty drives a named colour attribute. The decomposition model
// is pinned when the property is resolved so that both endpoints and every
// interpolated value share one component space.
type colorProperty struct {
	baseProperty
	name  string
	model ColorModel
}

func newColorProperty(tw *Tween, name string, model ColorModel) *colorProperty {
	p := new(colorProperty)
	p.tw = tw
	p.key = "color." + name
	p.name = name
	p.model = model
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *colorProperty) snapshot(t Target) Vectorized {
	c, _ := t.ColorAttr(p.name)
	c.Model = p.model
	return c.Vectorize()
}

func (p *colorProperty) apply(t Target, v Vectorized) {
	t.SetColorAttr(p.name, Reconstruct(v).(Color))
}

func (p *colorProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *colorProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *colorProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}

// keyedProperty drives an arbitrary named float attribute resolved by
// dynamic lookup on the target.
type keyedProperty struct {
	baseProperty
	name string
}

func newKeyedProperty(tw *Tween, name string) *keyedProperty {
	p := new(keyedProperty)
	p.tw = tw
	p.key = "attr." + name
	p.name = name
	p.easing = tw.easing
	p.spring = tw.newSpringState()
	return p
}

func (p *keyedProperty) snapshot(t Target) Vectorized {
	v, _ := t.FloatAttr(p.name)
	return Vectorized{Kind: KindNumeric, Components: []float64{v}}
}

func (p *keyedProperty) apply(t Target, v Vectorized) {
	t.SetFloatAttr(p.name, v.Components[0])
}

func (p *keyedProperty) Advance(t Target, dt float64, reversed bool) bool {
	return p.advance(p, t, dt, reversed)
}

func (p *keyedProperty) Prepare(t Target) {
	p.prepare(p, t)
}

func (p *keyedProperty) Seek(t Target, at float64) {
	p.seek(p, t, at)
}
