package engine

import "github.com/lixenwraith/dodge/component"

// KeyHandler receives press and release edges for raw control identifiers
type KeyHandler interface {
	Press(id string)
	Release(id string)
}

// KeySource delivers key edges to a subscribed handler until unsubscribed
type KeySource interface {
	Subscribe(h KeyHandler) (unsubscribe func())
}

// RenderSink draws one frame per tick
// A Hidden frame must clear the previous frame and draw nothing
type RenderSink interface {
	Render(f Frame)
}

// AudioSink is the proximity hum output device
// Init is called lazily on the first input event and at most once per session
type AudioSink interface {
	Init() error
	SetVolume(v float64)
	Close()
}

// Frame is the render-facing view of a session
type Frame struct {
	Field   component.Field
	Actors  component.Actors
	Phase   Phase
	Elapsed int
	Volume  float64
	Hidden  bool
}

type nopRender struct{}

func (nopRender) Render(Frame) {}

type nopAudio struct{}

func (nopAudio) Init() error { return nil }

func (nopAudio) SetVolume(float64) {}

func (nopAudio) Close() {}
