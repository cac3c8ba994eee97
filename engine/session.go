package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/audio"
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/status"
)

// SessionConfig is the immutable setup of a session
type SessionConfig struct {
	Field           component.Field
	Defaults        component.Actors
	Bindings        *input.Bindings
	FrameInterval   time.Duration
	CounterInterval time.Duration
	RestartPolicy   RestartPolicy
}

// DefaultSessionConfig returns the 500×500 field with the two standard actors
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Field:           component.Field{Width: constants.FieldWidth, Height: constants.FieldHeight},
		Defaults:        DefaultActors(),
		Bindings:        input.MustResolve(input.DefaultKeyTable()),
		FrameInterval:   constants.FrameUpdateInterval,
		CounterInterval: constants.ElapsedCounterInterval,
		RestartPolicy:   RestartWhenOver,
	}
}

// DefaultActors returns the literal starting actors
func DefaultActors() component.Actors {
	return component.Actors{
		{
			ID:     component.Actor1,
			Pos:    component.Vec2{X: constants.Actor1StartX, Y: constants.Actor1StartY},
			Speed:  constants.ActorSpeed,
			Radius: constants.ActorRadius,
			Color:  constants.Actor1Color,
		},
		{
			ID:     component.Actor2,
			Pos:    component.Vec2{X: constants.Actor2StartX, Y: constants.Actor2StartY},
			Speed:  constants.ActorSpeed,
			Radius: constants.ActorRadius,
			Color:  constants.Actor2Color,
		},
	}
}

type audioState uint8

const (
	audioIdle audioState = iota
	audioAcquired
	audioFailed
)

// Session owns the actors, held input, phase and the scheduler jobs that drive them
// Every method must run on the scheduler goroutine
type Session struct {
	ID string

	cfg    SessionConfig
	sched  *ClockScheduler
	render RenderSink
	audio  AudioSink
	log    *zap.Logger

	input   *input.State
	actors  component.Actors
	phase   Phase
	elapsed int
	hidden  bool
	volume  float64

	frameJob    *Job
	counterJob  *Job
	audioState  audioState
	unsubscribe func()
	torn        bool

	// Cached metric pointers
	statTicks   *status.Counter
	statElapsed *status.Counter
	statHidden  *status.Flag
	statVolume  *status.Gauge
	statPhase   *status.Label
}

// NewSession creates a session in PhaseNotStarted with default actors
// Nil sinks are replaced with no-ops, a nil logger with zap.NewNop, a nil registry with a private one
func NewSession(
	cfg SessionConfig,
	sched *ClockScheduler,
	render RenderSink,
	audioSink AudioSink,
	log *zap.Logger,
	statusReg *status.Registry,
) *Session {
	if render == nil {
		render = nopRender{}
	}
	if audioSink == nil {
		audioSink = nopAudio{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	if cfg.Bindings == nil {
		cfg.Bindings = input.MustResolve(input.DefaultKeyTable())
	}

	id := uuid.NewString()
	s := &Session{
		ID:          id,
		cfg:         cfg,
		sched:       sched,
		render:      render,
		audio:       audioSink,
		log:         log.With(zap.String("session", id)),
		input:       input.NewState(),
		actors:      cfg.Defaults,
		phase:       PhaseNotStarted,
		statTicks:   statusReg.Counter("engine.ticks"),
		statElapsed: statusReg.Counter("session.elapsed"),
		statHidden:  statusReg.Flag("render.hidden"),
		statVolume:  statusReg.Gauge("audio.volume"),
		statPhase:   statusReg.Label("session.phase"),
	}
	s.statPhase.Store(s.phase.String())
	s.statElapsed.Store(0)
	return s
}

// Connect subscribes the session to a key source; Teardown unsubscribes
func (s *Session) Connect(src KeySource) {
	if s.torn {
		return
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = src.Subscribe(s)
}

// Start acquires the frame job and draws the first frame
func (s *Session) Start() {
	if s.torn || s.phase == PhaseOver || s.frameJob.Active() {
		return
	}
	s.frameJob = s.sched.Every("frame", s.cfg.FrameInterval, s.Tick)
	s.render.Render(s.Snapshot())
	s.log.Info("session started",
		zap.Float64("field_width", s.cfg.Field.Width),
		zap.Float64("field_height", s.cfg.Field.Height),
		zap.Duration("frame_interval", s.cfg.FrameInterval),
		zap.String("restart_policy", s.cfg.RestartPolicy.String()),
	)
}

// Tick runs one pass of the pipeline: step, audio mapping, render, collision check
func (s *Session) Tick() {
	if s.torn || s.phase == PhaseOver {
		return
	}

	if moved := Step(s.input, s.cfg.Bindings, &s.actors, s.cfg.Field, s.phase); moved && s.phase == PhaseNotStarted {
		s.begin()
	}

	a, b := s.actors[component.Actor1], s.actors[component.Actor2]
	s.setVolume(audio.ProximityVolume(physics.Distance(a.Pos, b.Pos), s.cfg.Field.Diagonal()))

	s.render.Render(s.Snapshot())

	// Checked every tick, including before the first move
	if physics.Collides(a, b) {
		s.end()
	}

	s.statTicks.Add(1)
}

// begin is the NotStarted -> Running transition, it starts the elapsed counter at 0
func (s *Session) begin() {
	s.phase = PhaseRunning
	s.elapsed = 0
	s.counterJob.Cancel()
	s.counterJob = s.sched.Every("elapsed", s.cfg.CounterInterval, s.countSecond)

	s.statPhase.Store(s.phase.String())
	s.statElapsed.Store(0)
	s.log.Info("round started")
}

func (s *Session) countSecond() {
	if s.phase != PhaseRunning {
		return
	}
	s.elapsed++
	s.statElapsed.Store(int64(s.elapsed))
}

// end is the transition into Over: counter and frame loop stop, volume is forced to 0
func (s *Session) end() {
	from := s.phase
	s.phase = PhaseOver

	s.counterJob.Cancel()
	s.counterJob = nil
	s.frameJob.Cancel()
	s.frameJob = nil

	s.setVolume(0)
	s.statPhase.Store(s.phase.String())

	s.render.Render(s.Snapshot())
	s.log.Info("round over",
		zap.String("from", from.String()),
		zap.Int("elapsed_seconds", s.elapsed),
		zap.Float64("p1_x", s.actors[0].Pos.X),
		zap.Float64("p1_y", s.actors[0].Pos.Y),
		zap.Float64("p2_x", s.actors[1].Pos.X),
		zap.Float64("p2_y", s.actors[1].Pos.Y),
	)
}

// Restart resets actors, input and counter and resumes ticking
// Under RestartWhenOver it is a no-op outside PhaseOver
func (s *Session) Restart() {
	if s.torn {
		return
	}
	if s.cfg.RestartPolicy == RestartWhenOver && s.phase != PhaseOver {
		return
	}

	from := s.phase
	s.counterJob.Cancel()
	s.counterJob = nil

	s.actors = s.cfg.Defaults
	s.input.Clear()
	s.elapsed = 0
	s.phase = PhaseNotStarted

	s.statElapsed.Store(0)
	s.statPhase.Store(s.phase.String())

	if !s.frameJob.Active() {
		s.frameJob = s.sched.Every("frame", s.cfg.FrameInterval, s.Tick)
	}

	s.render.Render(s.Snapshot())
	s.log.Info("session restarted", zap.String("from", from.String()))
}

// Press marks id held; the first input event also acquires the audio device
func (s *Session) Press(id string) {
	if s.torn {
		return
	}
	s.acquireAudio()
	s.input.Press(id)
}

// Release clears id, no-op if not held
func (s *Session) Release(id string) {
	if s.torn {
		return
	}
	s.input.Release(id)
}

// ToggleVisibility flips the hidden flag and redraws; the simulation is unaffected
func (s *Session) ToggleVisibility() {
	if s.torn {
		return
	}
	s.hidden = !s.hidden
	s.statHidden.Store(s.hidden)
	s.render.Render(s.Snapshot())
}

// Teardown cancels both jobs, releases audio if held and leaves the key source
// Idempotent; resources never acquired are skipped
func (s *Session) Teardown() {
	if s.torn {
		return
	}
	s.torn = true

	s.frameJob.Cancel()
	s.frameJob = nil
	s.counterJob.Cancel()
	s.counterJob = nil

	if s.audioState == audioAcquired {
		s.audio.Close()
	}
	s.audioState = audioIdle

	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}

	s.log.Info("session torn down", zap.String("phase", s.phase.String()), zap.Int("elapsed_seconds", s.elapsed))
}

// acquireAudio opens the device once; failure leaves the session silent
func (s *Session) acquireAudio() {
	if s.audioState != audioIdle {
		return
	}
	if err := s.audio.Init(); err != nil {
		s.audioState = audioFailed
		s.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return
	}
	s.audioState = audioAcquired
	s.audio.SetVolume(s.volume)
	s.log.Debug("audio acquired")
}

// setVolume records the mapped volume and pushes it to an acquired device
func (s *Session) setVolume(v float64) {
	s.volume = v
	s.statVolume.Set(v)
	if s.audioState == audioAcquired {
		s.audio.SetVolume(v)
	}
}

// Snapshot returns the render-facing state
func (s *Session) Snapshot() Frame {
	return Frame{
		Field:   s.cfg.Field,
		Actors:  s.actors,
		Phase:   s.phase,
		Elapsed: s.elapsed,
		Volume:  s.volume,
		Hidden:  s.hidden,
	}
}

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Elapsed returns whole seconds survived in the current round
func (s *Session) Elapsed() int { return s.elapsed }

// Hidden reports the visibility flag
func (s *Session) Hidden() bool { return s.hidden }

// Volume returns the last mapped proximity volume
func (s *Session) Volume() float64 { return s.volume }

// Actors returns a copy of both actors
func (s *Session) Actors() component.Actors { return s.actors }

// Input exposes the held set for inspection
func (s *Session) Input() *input.State { return s.input }
