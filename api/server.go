package api

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/matt-g-everett/motion/stream"
)

// Api serves a small JSON control surface over the streamer. Handlers run
// on gin's goroutines, so they only use the streamer's queued control
// operations and its published status snapshot.
type Api struct {
	streamer *stream.Streamer
	addr     string
}

// NewApi creates an instance of an Api.
func NewApi(streamer *stream.Streamer, addr string) *Api {
	a := new(Api)
	a.streamer = streamer
	a.addr = addr
	return a
}

type tweenStatus struct {
	Keys     []string `json:"keys"`
	Progress float64  `json:"progress"`
	Reversed bool     `json:"reversed"`
	Duration float64  `json:"duration"`
}

type status struct {
	Frames    uint64        `json:"frames"`
	Active    int           `json:"active"`
	Paused    bool          `json:"paused"`
	TimeScale float64       `json:"timeScale"`
	Tweens    []tweenStatus `json:"tweens"`
}

func (a *Api) handleStatus(c *gin.Context) {
	st := a.streamer.Status()
	out := status{
		Frames:    st.Frames,
		Active:    st.Active,
		Paused:    st.Paused,
		TimeScale: st.TimeScale,
		Tweens:    make([]tweenStatus, 0, len(st.Tweens)),
	}
	for _, tw := range st.Tweens {
		out.Tweens = append(out.Tweens, tweenStatus{
			Keys:     tw.Keys,
			Progress: tw.Progress,
			Reversed: tw.Reversed,
			Duration: tw.Duration,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (a *Api) handlePause(c *gin.Context) {
	a.streamer.Pause()
	c.Status(http.StatusNoContent)
}

func (a *Api) handleResume(c *gin.Context) {
	a.streamer.Resume()
	c.Status(http.StatusNoContent)
}

type timeScaleRequest struct {
	TimeScale float64 `json:"timeScale" binding:"required"`
}

func (a *Api) handleTimeScale(c *gin.Context) {
	var req timeScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.streamer.SetTimeScale(req.TimeScale)
	c.Status(http.StatusNoContent)
}

func (a *Api) handleKill(c *gin.Context) {
	a.streamer.KillAll()
	c.Status(http.StatusNoContent)
}

// Router builds the gin engine with all routes registered.
func (a *Api) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.GET("/api/status", a.handleStatus)
	r.POST("/api/pause", a.handlePause)
	r.POST("/api/resume", a.handleResume)
	r.POST("/api/timescale", a.handleTimeScale)
	r.POST("/api/kill", a.handleKill)
	return r
}

// Serve runs the control API until the process exits.
func (a *Api) Serve() {
	log.Printf("Listening on %s...", a.addr)
	if err := a.Router().Run(a.addr); err != nil {
		log.Fatal(err)
	}
}
