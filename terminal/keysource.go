package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/input"
)

// Commands are the host actions bound in the key table; nil entries are ignored
type Commands struct {
	Restart          func()
	ToggleVisibility func()
	Quit             func()
	Resize           func()
}

// KeySource polls a tcell screen and implements engine.KeySource
// Run owns the polling goroutine; all other state lives on the scheduler goroutine
type KeySource struct {
	screen   tcell.Screen
	sched    *engine.ClockScheduler
	bindings *input.Bindings
	commands Commands
	hold     time.Duration
	log      *zap.Logger

	handler    engine.KeyHandler
	held       map[string]time.Time // identifier -> last press or repeat
	releaseJob *engine.Job
}

var _ engine.KeySource = (*KeySource)(nil)

// NewKeySource creates a key source; hold <= 0 uses the default hold window
func NewKeySource(
	screen tcell.Screen,
	sched *engine.ClockScheduler,
	bindings *input.Bindings,
	hold time.Duration,
	commands Commands,
	log *zap.Logger,
) *KeySource {
	if hold <= 0 {
		hold = constants.KeyHoldWindow
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &KeySource{
		screen:   screen,
		sched:    sched,
		bindings: bindings,
		commands: commands,
		hold:     hold,
		log:      log,
		held:     make(map[string]time.Time),
	}
}

// Subscribe routes key edges to h and starts the hold-window release job
// Must be called on the scheduler goroutine
func (k *KeySource) Subscribe(h engine.KeyHandler) func() {
	k.handler = h
	k.releaseJob.Cancel()
	k.releaseJob = k.sched.Every("key-release", constants.KeyHoldCheckInterval, k.expire)

	return func() {
		k.releaseJob.Cancel()
		k.releaseJob = nil
		k.releaseAll()
		k.handler = nil
	}
}

// Run polls the screen until ctx is cancelled or the screen is finalized
func (k *KeySource) Run(ctx context.Context) error {
	core.Go(func() {
		<-ctx.Done()
		// Unblock PollEvent
		_ = k.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	for {
		ev := k.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		k.dispatch(ev)
	}
}

// dispatch hands a polled event to the scheduler goroutine
func (k *KeySource) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		id := KeyName(ev)
		if id == "" {
			return
		}
		if !k.sched.Post(func() { k.handleKey(id) }) {
			k.log.Debug("key dropped, scheduler stopped", zap.String("key", id))
		}
	case *tcell.EventResize:
		if k.commands.Resize != nil {
			k.sched.Post(k.commands.Resize)
		}
	}
}

// handleKey runs a bound command or refreshes the hold of a movement or unbound key
func (k *KeySource) handleKey(id string) {
	if a, ok := k.bindings.Command(id); ok {
		k.log.Debug("command", zap.String("key", id), zap.String("action", a.String()))
		k.runCommand(a)
		return
	}

	if k.handler == nil {
		return
	}
	if _, ok := k.held[id]; !ok {
		k.handler.Press(id)
	}
	k.held[id] = k.sched.Now()
}

func (k *KeySource) runCommand(a input.Action) {
	var fn func()
	switch a {
	case input.ActionRestart:
		// Restart clears the handler's held set; drop ours so the next repeat presses again
		k.releaseAll()
		fn = k.commands.Restart
	case input.ActionToggleVisibility:
		fn = k.commands.ToggleVisibility
	case input.ActionQuit:
		fn = k.commands.Quit
	}
	if fn != nil {
		fn()
	}
}

// expire releases keys with no press or repeat for the hold window
func (k *KeySource) expire() {
	now := k.sched.Now()
	for id, last := range k.held {
		if now.Sub(last) >= k.hold {
			delete(k.held, id)
			if k.handler != nil {
				k.handler.Release(id)
			}
		}
	}
}

func (k *KeySource) releaseAll() {
	for id := range k.held {
		delete(k.held, id)
		if k.handler != nil {
			k.handler.Release(id)
		}
	}
}

// Held returns the number of keys currently considered held
func (k *KeySource) Held() int {
	return len(k.held)
}
