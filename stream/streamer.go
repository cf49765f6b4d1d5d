package stream

import (
	"log"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motion/scene"
	"github.com/matt-g-everett/motion/tween"
	"github.com/matt-g-everett/motion/util"
)

// pulse is one light travelling down the strip. The layer holds its
// position and colour; the tween drives both.
type pulse struct {
	handle scene.Handle
	layer  *scene.Layer
	tw     *tween.Tween
}

// Streamer renders tween-driven pulses into RGB frames and streams them
// to an ledrx device. The runner, registry and pulses belong to the
// goroutine that calls Advance; other goroutines control the streamer
// through the command queue and read state from the status snapshot.
type Streamer struct {
	client     mqtt.Client
	config     Config
	runner     *tween.Runner
	registry   *scene.Registry
	gradient   GradientTable
	backColour colorful.Color
	pulses     []*pulse
	lut        []float64
	frames     uint64
	ctrl       chan func()
	status     atomic.Value
}

// TweenStatus is the published state of one running tween.
type TweenStatus struct {
	Keys     []string
	Progress float64
	Reversed bool
	Duration float64
}

// Status is a point-in-time snapshot of the streamer's animation state,
// republished after every frame.
type Status struct {
	Frames    uint64
	Active    int
	Paused    bool
	TimeScale float64
	Tweens    []TweenStatus
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.client = client
	s.config = config
	s.runner = tween.NewRunner()
	s.registry = scene.NewRegistry()
	s.gradient = DefaultGradient
	s.backColour, _ = colorful.Hex(config.Strip.Background)
	s.lut = util.GenerateLut(64)
	s.ctrl = make(chan func(), 16)

	return s
}

// Runner exposes the active-animation registry. It must only be touched
// from the goroutine that calls Advance.
func (s *Streamer) Runner() *tween.Runner {
	return s.runner
}

// Frames reports how many frames have been rendered.
func (s *Streamer) Frames() uint64 {
	return s.frames
}

// control queues f to run on the streaming goroutine ahead of the next
// frame.
func (s *Streamer) control(f func()) {
	s.ctrl <- f
}

// Pause stops the animations on the next frame. Rendering continues.
func (s *Streamer) Pause() {
	s.control(func() { s.runner.Pause() })
}

// Resume restarts paused animations on the next frame.
func (s *Streamer) Resume() {
	s.control(func() { s.runner.Resume() })
}

// SetTimeScale changes the global time multiplier on the next frame.
func (s *Streamer) SetTimeScale(v float64) {
	s.control(func() { s.runner.SetTimeScale(v) })
}

// KillAll kills every running tween on the next frame.
func (s *Streamer) KillAll() {
	s.control(func() {
		for _, tw := range s.runner.Tweens() {
			tw.Kill()
		}
	})
}

// Status returns the snapshot published by the most recent frame. Safe
// to call from any goroutine.
func (s *Streamer) Status() Status {
	if v := s.status.Load(); v != nil {
		return v.(Status)
	}
	return Status{TimeScale: 1}
}

func (s *Streamer) drainControl() {
	for {
		select {
		case f := <-s.ctrl:
			f()
		default:
			return
		}
	}
}

func (s *Streamer) publishStatus() {
	tweens := s.runner.Tweens()
	st := Status{
		Frames:    s.frames,
		Active:    s.runner.Len(),
		Paused:    s.runner.Paused(),
		TimeScale: s.runner.TimeScale(),
		Tweens:    make([]TweenStatus, 0, len(tweens)),
	}
	for _, tw := range tweens {
		st.Tweens = append(st.Tweens, TweenStatus{
			Keys:     tw.Keys(),
			Progress: tw.Progress(),
			Reversed: tw.Reversed(),
			Duration: tw.Duration(),
		})
	}
	s.status.Store(st)
}

// spawnPulse launches a new pulse from the left edge with a tween that
// carries it off the right edge while its colour drifts along the
// gradient.
func (s *Streamer) spawnPulse() {
	layer := scene.NewLayer()
	layer.SetFrame(tween.MakeRect(-s.config.Pulses.Length, 0, s.config.Pulses.Length, 1))
	sat := util.RandomiseSaturation(0.6, 0.9)
	layer.SetColorAttr("fill", tween.Color{C: s.gradient.RandomColor(sat, 0.5), Alpha: 1})

	handle := s.registry.Add(layer)
	tw := tween.New(s.registry.Ref(handle), s.config.Pulses.Duration,
		tween.Position(float64(s.config.Strip.NumPixels), 0),
		tween.Paint("fill", tween.Color{C: s.gradient.RandomColor(sat, 0.5), Alpha: 1}),
	)
	tw.SetEase(ease.InOutQuad)
	tw.SetStagger(rand.Float64() * 0.5)
	tw.SetRunner(s.runner)
	tw.Play()

	s.pulses = append(s.pulses, &pulse{handle: handle, layer: layer, tw: tw})
}

// reap drops pulses whose tweens finished and releases their layers.
func (s *Streamer) reap() {
	kept := s.pulses[:0]
	for _, p := range s.pulses {
		if p.tw.State() == tween.StateCompleted || p.tw.State() == tween.StateDead {
			s.registry.Remove(p.handle)
			continue
		}
		kept = append(kept, p)
	}
	s.pulses = kept
}

// Advance applies queued control commands, moves every animation by dt
// seconds and renders the strip.
func (s *Streamer) Advance(dt float64) *Frame {
	s.drainControl()
	s.runner.Advance(dt)
	if rand.Int31n(s.config.Pulses.Chance) == 0 {
		s.spawnPulse()
	}
	s.reap()

	f := NewFrame(s.config.Strip.NumPixels)
	f.Fill(s.backColour)
	for _, p := range s.pulses {
		frame := p.layer.Frame()
		fill, ok := p.layer.ColorAttr("fill")
		if !ok {
			continue
		}
		bias := s.lut[int(p.tw.Progress()*float64(len(s.lut)-1))]
		bias *= util.Clamp01(p.layer.Opacity() * fill.Alpha)

		start := int(math.Ceil(frame.Origin.X))
		end := int(math.Floor(frame.Origin.X + frame.Size.Width))
		for i := start; i <= end; i++ {
			f.Blend(i, fill.C, bias)
		}
	}
	s.frames++
	s.publishStatus()
	return f
}

// SendFrame advances the animations and sends the resulting frame as
// binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(dt float64) {
	f := s.Advance(dt)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Subscribe listens for control messages. Call once the MQTT connection
// is up.
func (s *Streamer) Subscribe() {
	if s.config.Mqtt.Topics.Control == "" {
		return
	}
	s.client.Subscribe(s.config.Mqtt.Topics.Control, 1, func(client mqtt.Client, m mqtt.Message) {
		switch string(m.Payload()) {
		case "pause":
			s.Pause()
		case "resume":
			s.Resume()
		default:
			log.Printf("Unknown control message: %s", m.Payload())
		}
	})
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	interval := time.Duration(s.config.Strip.FrameMs) * time.Millisecond
	publishTimer := time.NewTicker(interval)
	last := time.Now()
	for {
		<-publishTimer.C
		now := time.Now()
		s.SendFrame(now.Sub(last).Seconds())
		last = now
	}
}
