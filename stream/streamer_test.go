package stream

import (
	"testing"

	"github.com/matt-g-everett/motion/tween"
)

func testConfig() Config {
	var c Config
	c.ApplyDefaults()
	c.Strip.NumPixels = 50
	c.Pulses.Chance = 1 // spawn on every frame
	c.Pulses.Duration = 0.5
	return c
}

func TestStreamerAdvanceRenders(t *testing.T) {
	s := NewStreamer(testConfig(), nil)

	f := s.Advance(0.033)
	if f.Len() != 50 {
		t.Fatalf("frame length = %d, want 50", f.Len())
	}
	if s.Runner().Len() == 0 {
		t.Fatal("no pulse tweens spawned with chance 1")
	}
	if s.Frames() != 1 {
		t.Fatalf("frame count = %d, want 1", s.Frames())
	}
}

func TestStreamerReapsFinishedPulses(t *testing.T) {
	s := NewStreamer(testConfig(), nil)

	s.Advance(0.033)
	spawned := len(s.pulses)
	if spawned == 0 {
		t.Fatal("expected at least one pulse")
	}

	// Run well past the pulse duration plus its maximum stagger.
	for i := 0; i < 100; i++ {
		s.Advance(0.033)
	}
	for _, p := range s.pulses {
		if p.tw.Progress() >= 1 {
			t.Fatal("completed pulse survived reaping")
		}
	}
}

func TestControlCommandsApplyOnAdvance(t *testing.T) {
	s := NewStreamer(testConfig(), nil)
	s.Advance(0.033)

	// Control surfaces run on their own goroutines; commands must queue
	// rather than touch the runner directly.
	done := make(chan struct{})
	go func() {
		s.Pause()
		s.SetTimeScale(2)
		close(done)
	}()
	<-done

	if s.Runner().Paused() {
		t.Fatal("pause applied before a frame")
	}
	s.Advance(0.033)
	if !s.Runner().Paused() {
		t.Fatal("queued pause not applied")
	}
	if got := s.Runner().TimeScale(); got != 2 {
		t.Fatalf("timeScale = %v, want 2", got)
	}

	s.Resume()
	s.Advance(0.033)
	if s.Runner().Paused() {
		t.Fatal("queued resume not applied")
	}
}

func TestConcurrentControlIsSerialized(t *testing.T) {
	s := NewStreamer(testConfig(), nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			s.SetTimeScale(1)
			s.Pause()
			s.Resume()
			_ = s.Status()
		}
		close(done)
	}()
	for {
		s.Advance(0.005)
		select {
		case <-done:
			s.Advance(0.005)
			if s.Runner().Paused() {
				t.Fatal("resume was queued last, runner should not be paused")
			}
			return
		default:
		}
	}
}

func TestKillAllStopsTweens(t *testing.T) {
	s := NewStreamer(testConfig(), nil)
	s.Advance(0.033)
	tweens := s.Runner().Tweens()
	if len(tweens) == 0 {
		t.Fatal("expected running tweens")
	}

	s.KillAll()
	if tweens[0].State() == tween.StateDead {
		t.Fatal("kill applied before a frame")
	}
	s.Advance(0.033)
	if tweens[0].State() != tween.StateDead {
		t.Fatalf("state = %v, want %v", tweens[0].State(), tween.StateDead)
	}
}

func TestStatusSnapshot(t *testing.T) {
	s := NewStreamer(testConfig(), nil)
	if st := s.Status(); st.Frames != 0 || st.TimeScale != 1 {
		t.Fatalf("zero-frame status = %+v", st)
	}

	s.Advance(0.033)
	st := s.Status()
	if st.Frames != 1 {
		t.Errorf("frames = %d, want 1", st.Frames)
	}
	if st.Active == 0 || len(st.Tweens) == 0 {
		t.Fatalf("status = %+v, want active tweens with chance 1", st)
	}
}
