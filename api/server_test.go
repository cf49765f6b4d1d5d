package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/matt-g-everett/motion/stream"
	"github.com/matt-g-everett/motion/tween"
)

func testApi() *Api {
	gin.SetMode(gin.TestMode)
	var config stream.Config
	config.ApplyDefaults()
	config.Strip.NumPixels = 10
	config.Pulses.Chance = 1
	return NewApi(stream.NewStreamer(config, nil), ":0")
}

func TestStatusEndpoint(t *testing.T) {
	a := testApi()
	a.streamer.Advance(0.033)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	a.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var out status
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Frames != 1 {
		t.Errorf("frames = %d, want 1", out.Frames)
	}
	if out.TimeScale != 1 {
		t.Errorf("timeScale = %v, want 1", out.TimeScale)
	}
}

func TestPauseResumeEndpoints(t *testing.T) {
	a := testApi()
	router := a.Router()

	// Handlers queue their commands; the streamer applies them on its
	// next frame.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/pause", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("pause status = %d, want 204", w.Code)
	}
	a.streamer.Advance(0.033)
	if !a.streamer.Runner().Paused() {
		t.Fatal("runner not paused")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/resume", nil))
	a.streamer.Advance(0.033)
	if a.streamer.Runner().Paused() {
		t.Fatal("runner still paused")
	}
}

func TestTimeScaleEndpoint(t *testing.T) {
	a := testApi()
	router := a.Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/timescale",
		strings.NewReader(`{"timeScale": 2.5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	a.streamer.Advance(0.033)
	if got := a.streamer.Runner().TimeScale(); got != 2.5 {
		t.Fatalf("timeScale = %v, want 2.5", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/timescale", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a missing timeScale", w.Code)
	}
}

func TestKillEndpoint(t *testing.T) {
	a := testApi()
	a.streamer.Advance(0.033)
	tweens := a.streamer.Runner().Tweens()
	if len(tweens) == 0 {
		t.Fatal("expected running tweens")
	}

	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/kill", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("kill status = %d, want 204", w.Code)
	}
	a.streamer.Advance(0.033)
	if tweens[0].State() != tween.StateDead {
		t.Fatalf("state = %v, want %v", tweens[0].State(), tween.StateDead)
	}
}
