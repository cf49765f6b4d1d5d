package tween

import (
	"testing"
)

func TestCompletionReportedOnce(t *testing.T) {
	target := newFakeTarget()
	target.frame = MakeRect(0, 0, 1, 1)

	tw := New(Static{T: target}, 1.0, Position(10, 10))
	tw.Play()

	if tw.Advance(0.6, false) {
		t.Fatal("done before duration elapsed")
	}
	if !tw.Advance(0.6, false) {
		t.Fatal("not done after duration elapsed")
	}
	if tw.State() != StateCompleted {
		t.Fatalf("state = %v, want %v", tw.State(), StateCompleted)
	}

	// Progress never exceeds the duration.
	if p := tw.Progress(); !almostEqual(p, 1) {
		t.Errorf("progress = %v, want 1", p)
	}
	o := target.frame.Origin
	if !almostEqual(o.X, 10) || !almostEqual(o.Y, 10) {
		t.Errorf("final origin = %+v, want (10, 10)", o)
	}

	// Subsequent advances keep signalling removable without moving.
	writes := target.writes()
	if !tw.Advance(0.5, false) {
		t.Error("completed tween must keep reporting removable")
	}
	if target.writes() != writes {
		t.Error("completed tween touched its target")
	}
}

func TestReverseBeforeStart(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.SetDelay(1.0)
	tw.Play()

	if tw.Advance(0.5, false) {
		t.Fatal("done while still inside the delay")
	}

	tw.Reverse()
	if !tw.Advance(1.0, false) {
		t.Fatal("reversing back past the start must report completion")
	}
	if tw.State() != StateCompleted {
		t.Fatalf("state = %v, want %v", tw.State(), StateCompleted)
	}
}

func TestDeadTargetSignalsRemoval(t *testing.T) {
	target := newFakeTarget()
	resolver := &fakeResolver{target: target, alive: true}

	tw := New(resolver, 1.0, Position(10, 10))
	tw.Play()
	tw.Advance(0.25, false)

	resolver.alive = false
	writes := target.writes()
	if !tw.Advance(0.25, false) {
		t.Fatal("dead target must signal removal on the next tick")
	}
	if target.writes() != writes {
		t.Error("dead-target tick touched a property")
	}
}

func TestIdleTweenSignalsRemoval(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 1.0, Position(10, 10))
	if !tw.Advance(0.1, false) {
		t.Error("a tween that was never started reports removable")
	}
}

func TestPauseAndForce(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.Play()
	tw.Advance(0.25, false)
	tw.Pause()

	if tw.Advance(0.25, false) {
		t.Fatal("paused tween reported done")
	}
	opacity := target.opacity
	tw.Advance(0.25, false)
	if !almostEqual(target.opacity, opacity) {
		t.Error("paused tween advanced")
	}

	// A forced advance drives a paused tween anyway.
	tw.Advance(0.25, true)
	if almostEqual(target.opacity, opacity) {
		t.Error("forced advance did not move a paused tween")
	}

	tw.Resume()
	if tw.State() != StateRunning {
		t.Fatalf("state = %v, want %v", tw.State(), StateRunning)
	}
}

func TestSeek(t *testing.T) {
	target := newFakeTarget()
	target.frame = MakeRect(0, 0, 1, 1)

	tw := New(Static{T: target}, 2.0, Position(100, 50))
	tw.Play()
	tw.Seek(1.0)

	o := target.frame.Origin
	if !almostEqual(o.X, 50) || !almostEqual(o.Y, 25) {
		t.Fatalf("origin after seek = %+v, want (50, 25)", o)
	}
	if !almostEqual(tw.Elapsed(), 1.0) {
		t.Errorf("elapsed = %v, want 1.0", tw.Elapsed())
	}
}

func TestSeekIncludesStartOffset(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 2.0, Fade(0))
	tw.SetDelay(0.5)
	tw.SetStagger(0.25)
	tw.Play()
	tw.Seek(1.0)
	if !almostEqual(tw.Elapsed(), 1.75) {
		t.Errorf("elapsed = %v, want 1.75 (delay + stagger + seek)", tw.Elapsed())
	}
}

func TestKill(t *testing.T) {
	runner := NewRunner()
	target := newFakeTarget()
	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.SetRunner(runner)
	tw.Play()

	if runner.Len() != 1 {
		t.Fatalf("runner length = %d, want 1", runner.Len())
	}
	tw.Kill()
	if tw.State() != StateDead {
		t.Fatalf("state = %v, want %v", tw.State(), StateDead)
	}
	if runner.Len() != 0 {
		t.Errorf("runner length = %d, want 0", runner.Len())
	}

	// Dead is terminal; playing again is a no-op.
	tw.Play()
	if tw.State() != StateDead {
		t.Error("killed tween restarted")
	}
}

func TestTimeScale(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 2.0, Fade(0))
	tw.SetTimeScale(2)
	tw.Play()
	if !tw.Advance(1.0, false) {
		t.Fatal("double-speed tween not done after half the duration")
	}
}

func TestTimelineGatesStart(t *testing.T) {
	target := newFakeTarget()
	tl := &fakeTimeline{}

	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.SetTimeline(tl, 1.0)
	tw.Play()

	if tl.prepared == 0 {
		t.Error("timeline prepare hook not invoked")
	}

	tl.total = 0.5
	if tw.Advance(0.5, false) {
		t.Fatal("tween ran before the timeline playhead reached it")
	}
	if !almostEqual(tw.Elapsed(), 0) {
		t.Fatalf("elapsed = %v, want 0 while gated", tw.Elapsed())
	}

	tl.total = 1.5
	tw.Advance(0.5, false)
	if !almostEqual(target.opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5 once playhead passed the start", target.opacity)
	}
}

func TestTimelineReversedGate(t *testing.T) {
	target := newFakeTarget()
	tl := &fakeTimeline{reversed: true}

	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.SetTimeline(tl, 1.0)
	tw.Play()

	// Reversed timelines gate on the tween's end time instead.
	tl.total = 2.5
	if tw.Advance(0.5, false) {
		t.Fatal("tween ran before the reversed playhead reached its end time")
	}

	tl.total = 1.5
	tw.Advance(0.5, false)
	if almostEqual(target.opacity, 1) {
		t.Error("tween did not run once the reversed playhead passed its end")
	}
}

func TestReverseAfterCompletionWalksBack(t *testing.T) {
	target := newFakeTarget()
	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.Play()
	tw.Advance(1.0, false)
	if !almostEqual(target.opacity, 0) {
		t.Fatalf("opacity = %v, want 0 after completion", target.opacity)
	}

	tw.Reverse()
	if tw.State() != StateRunning {
		t.Fatalf("state = %v, want %v after reverse", tw.State(), StateRunning)
	}
	if tw.Advance(0.5, false) {
		t.Fatal("done after walking only half way back")
	}
	if !almostEqual(target.opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5 walking back", target.opacity)
	}

	if !tw.Advance(0.5, false) {
		t.Fatal("reversed tween not done back at the start")
	}
	if !almostEqual(target.opacity, 1) {
		t.Errorf("opacity = %v, want 1 back at the start", target.opacity)
	}
}

func TestSetDurationPropagates(t *testing.T) {
	target := newFakeTarget()
	tl := &fakeTimeline{}

	tw := New(Static{T: target}, 1.0, Fade(0))
	tw.SetTimeline(tl, 2.0)
	tw.SetDuration(3.0)

	if !almostEqual(tl.duration, 5.0) {
		t.Errorf("timeline duration = %v, want 5.0 (start + total)", tl.duration)
	}

	// Properties read the new duration on their next frame.
	tw.Play()
	tl.total = 2.0
	tw.Advance(1.5, false)
	if !almostEqual(target.opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5 of the longer duration", target.opacity)
	}
}
