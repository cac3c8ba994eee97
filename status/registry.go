// Package status holds the named gauges shown on the debug HUD.
// Writers cache the pointer once at construction and update it lock-free;
// the HUD reads everything back through Lines.
package status

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// MaxLabelLen bounds label values so the HUD line stays short
const MaxLabelLen = 16

type metric interface {
	format() string
}

// Counter is an integer metric such as ticks or elapsed seconds
type Counter struct{ atomic.Int64 }

func (c *Counter) format() string { return strconv.FormatInt(c.Load(), 10) }

// Gauge is a float metric stored as IEEE bits
type Gauge struct{ bits atomic.Uint64 }

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

func (g *Gauge) format() string { return fmt.Sprintf("%.3f", g.Get()) }

// Flag is a boolean metric
type Flag struct{ atomic.Bool }

func (f *Flag) format() string { return strconv.FormatBool(f.Load()) }

// Label is a short string metric, truncated to MaxLabelLen bytes
type Label struct{ p atomic.Pointer[string] }

func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.p.Store(&v)
}

func (l *Label) Load() string {
	if p := l.p.Load(); p != nil {
		return *p
	}
	return ""
}

func (l *Label) format() string { return l.Load() }

// Registry maps metric names to their values
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]metric
}

func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]metric)}
}

// Counter returns the counter registered as name, creating it on first use
func (r *Registry) Counter(name string) *Counter { return lookup[*Counter](r, name) }

// Gauge returns the gauge registered as name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge { return lookup[*Gauge](r, name) }

// Flag returns the flag registered as name, creating it on first use
func (r *Registry) Flag(name string) *Flag { return lookup[*Flag](r, name) }

// Label returns the label registered as name, creating it on first use
func (r *Registry) Label(name string) *Label { return lookup[*Label](r, name) }

// lookup panics when name is already registered with another kind
func lookup[M interface {
	metric
	*E
}, E any](r *Registry, name string) M {
	r.mu.RLock()
	m, ok := r.metrics[name]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		if m, ok = r.metrics[name]; !ok {
			m = M(new(E))
			r.metrics[name] = m
		}
		r.mu.Unlock()
	}

	typed, ok := m.(M)
	if !ok {
		panic(fmt.Sprintf("status: %q registered as %T", name, m))
	}
	return typed
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.metrics)
}

// Lines renders every metric as "name=value", sorted by name
func (r *Registry) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	slices.Sort(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + "=" + r.metrics[name].format()
	}
	return lines
}
