package tween

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/fogleman/ease"
)

// Easing reparameterizes normalized progress before interpolation. Every
// function in github.com/fogleman/ease satisfies it.
type Easing func(t float64) float64

// Linear is the default easing.
var Linear Easing = ease.Linear

// Spring describes physically-modelled motion as an alternative to an
// easing curve. Tension pulls progress towards its target, friction damps
// the oscillation.
type Spring struct {
	Tension  float64
	Friction float64
}

// springRate is the fixed integration step rate for spring followers.
const springRate = 120.0

// springState is the per-property follower for a Spring descriptor. It
// chases the linear progress value, overshooting and settling the way an
// underdamped oscillator does.
type springState struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	carry  float64
}

// newState builds the follower. Tension is floored at 1 and friction at
// 0; a non-positive tension cannot move the follower.
func (s Spring) newState() *springState {
	tension := math.Max(s.Tension, 1)
	friction := math.Max(s.Friction, 0)
	omega := math.Sqrt(tension)
	zeta := friction / (2 * math.Sqrt(tension))
	return &springState{spring: harmonica.NewSpring(1/springRate, omega, zeta)}
}

// follow advances the follower by dt towards target and returns its
// position. Integration runs at a fixed internal rate; fractional steps
// carry over to the next call.
func (s *springState) follow(target, dt float64) float64 {
	s.carry += math.Abs(dt)
	step := 1 / springRate
	for s.carry >= step {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
		s.carry -= step
	}
	return s.pos
}

// jump snaps the follower directly to a position, zeroing velocity.
// Used by seek, which bypasses incremental advancement.
func (s *springState) jump(target float64) float64 {
	s.pos = target
	s.vel = 0
	s.carry = 0
	return s.pos
}

func (s *springState) reset(pos float64) {
	s.pos = pos
	s.vel = 0
	s.carry = 0
}
