package tween

// An Animation is anything a Runner can drive each frame. Advance returns
// true when the animation is finished and should be removed.
type Animation interface {
	Advance(dt float64, force bool) bool
}

// Runner is the registry of currently running animations. An external
// display-refresh driver calls Advance once per frame; everything else is
// setup. Create one per process and inject it; there is no package-level
// instance. A Runner is confined to the goroutine that ticks it; callers
// on other goroutines must queue their control operations onto that
// goroutine, the way stream.Streamer does.
type Runner struct {
	animations []Animation
	timeScale  float64
	paused     bool
	ticking    bool
}

// NewRunner creates an instance of a Runner.
func NewRunner() *Runner {
	r := new(Runner)
	r.timeScale = 1
	return r
}

// Add registers an animation. Adding during a tick is allowed; the
// animation joins from the next frame.
func (r *Runner) Add(a Animation) {
	for _, existing := range r.animations {
		if existing == a {
			return
		}
	}
	r.animations = append(r.animations, a)
}

// Remove deregisters an animation. Safe to call from inside a tick
// callback; the slot is cleared immediately and compacted after the tick.
func (r *Runner) Remove(a Animation) {
	for i := range r.animations {
		if r.animations[i] == a {
			r.animations[i] = nil
		}
	}
	if !r.ticking {
		r.compact()
	}
}

// Advance ticks every registered animation by dt and drops the finished
// ones.
func (r *Runner) Advance(dt float64) {
	if r.paused {
		return
	}
	dt *= r.timeScale

	r.ticking = true
	n := len(r.animations)
	for i := 0; i < n; i++ {
		a := r.animations[i]
		if a == nil {
			continue
		}
		if a.Advance(dt, false) {
			r.animations[i] = nil
		}
	}
	r.ticking = false
	r.compact()
}

func (r *Runner) compact() {
	kept := r.animations[:0]
	for _, a := range r.animations {
		if a != nil {
			kept = append(kept, a)
		}
	}
	r.animations = kept
}

// Len reports how many animations are registered.
func (r *Runner) Len() int {
	n := 0
	for _, a := range r.animations {
		if a != nil {
			n++
		}
	}
	return n
}

// Pause stops the runner from advancing its animations.
func (r *Runner) Pause() {
	r.paused = true
}

// Resume restarts a paused runner.
func (r *Runner) Resume() {
	r.paused = false
}

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// TimeScale reports the global time multiplier.
func (r *Runner) TimeScale() float64 {
	return r.timeScale
}

// SetTimeScale multiplies every frame delta handed to the animations.
func (r *Runner) SetTimeScale(s float64) {
	r.timeScale = s
}

// Tweens returns the registered animations that are tweens, for
// inspection surfaces.
func (r *Runner) Tweens() []*Tween {
	out := make([]*Tween, 0, len(r.animations))
	for _, a := range r.animations {
		if tw, ok := a.(*Tween); ok {
			out = append(out, tw)
		}
	}
	return out
}
