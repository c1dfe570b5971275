// Package playback turns a trace into a cursor that can be stepped, scrubbed
// or played on a timer.
package playback

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/san-kum/carryviz/internal/trace"
)

const DefaultInterval = time.Second

var (
	DefaultFirst  = []int{2, 4, 3}
	DefaultSecond = []int{5, 6, 4}
)

// State is a read-only view of the controller after a change.
type State struct {
	Step    trace.Step
	Index   int
	Total   int
	Playing bool
	First   []int
	Second  []int
}

// AtEnd reports whether the cursor is on the last step.
func (s State) AtEnd() bool { return s.Index >= s.Total-1 }

type Option func(*Controller)

func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithClock(clk Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithInputs(first, second []int) Option {
	return func(c *Controller) {
		c.first = slices.Clone(first)
		c.second = slices.Clone(second)
	}
}

// WithOnChange registers fn to receive the new state after every
// observable change. fn runs outside the controller lock and may call back
// into the controller.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller holds the cursor into the active trace and the autoplay flag.
// All methods are safe for concurrent use; autoplay ticks arrive from the
// clock's goroutine.
type Controller struct {
	mu sync.Mutex

	first, second []int
	tr            *trace.Trace
	index         int
	playing       bool

	interval time.Duration
	clock    Clock
	stop     func() bool
	gen      uint64
	closed   bool

	onChange func(State)
	log      *slog.Logger
}

func New(opts ...Option) *Controller {
	c := &Controller{
		first:    slices.Clone(DefaultFirst),
		second:   slices.Clone(DefaultSecond),
		interval: DefaultInterval,
		clock:    RealClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	c.tr = trace.Generate(c.first, c.second)
	return c
}

// Previous moves back one step; no-op on the first step.
func (c *Controller) Previous() {
	c.update(func() {
		c.index = max(0, c.index-1)
	})
}

// Next moves forward one step; no-op on the last step.
func (c *Controller) Next() {
	c.update(func() {
		c.index = min(c.tr.Len()-1, c.index+1)
	})
}

// GoTo moves to step i, clamped to the trace.
func (c *Controller) GoTo(i int) {
	c.update(func() {
		c.index = clamp(i, 0, c.tr.Len()-1)
	})
}

// First moves to the first step without touching the play flag.
func (c *Controller) First() { c.GoTo(0) }

// Last moves to the last step without touching the play flag.
func (c *Controller) Last() { c.GoTo(c.Total() - 1) }

func (c *Controller) TogglePlay() {
	c.update(func() {
		c.playing = !c.playing
	})
}

func (c *Controller) Pause() {
	c.update(func() {
		c.playing = false
	})
}

// Reset returns to the first step and stops playback.
func (c *Controller) Reset() {
	c.update(func() {
		c.index = 0
		c.playing = false
	})
}

// UpdateInputs replaces the input pair, regenerates the trace and resets
// the cursor. Readers never see the new trace with the old index.
func (c *Controller) UpdateInputs(first, second []int) {
	tr := trace.Generate(first, second)
	c.update(func() {
		c.first = slices.Clone(first)
		c.second = slices.Clone(second)
		c.tr = tr
		c.index = 0
		c.playing = false
	})
	c.log.Debug("inputs updated", "l1", first, "l2", second, "steps", tr.Len())
}

// Close cancels any pending autoplay tick. Navigation keeps working but
// playback no longer advances on its own.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cancelLocked()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) Trace() *trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr
}

func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr.Len()
}

func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// update applies fn, re-arms autoplay and notifies the observer if anything
// a reader can see changed.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	tr, index, playing := c.tr, c.index, c.playing
	fn()
	c.scheduleLocked()
	changed := tr != c.tr || index != c.index || playing != c.playing
	st := c.stateLocked()
	hook := c.onChange
	c.mu.Unlock()

	if changed && hook != nil {
		hook(st)
	}
}

// scheduleLocked keeps at most one tick pending: any earlier tick is
// cancelled first, and playback stops by itself on the last step.
func (c *Controller) scheduleLocked() {
	c.cancelLocked()
	if c.closed || !c.playing {
		return
	}
	if c.index >= c.tr.Len()-1 {
		c.playing = false
		c.log.Debug("playback reached last step", "step", c.index)
		return
	}
	gen := c.gen
	c.stop = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Controller) cancelLocked() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.gen++
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.playing {
		c.mu.Unlock()
		c.log.Debug("ignoring stale autoplay tick")
		return
	}
	c.stop = nil
	c.index = min(c.tr.Len()-1, c.index+1)
	c.scheduleLocked()
	st := c.stateLocked()
	hook := c.onChange
	c.mu.Unlock()

	if hook != nil {
		hook(st)
	}
}

func (c *Controller) stateLocked() State {
	return State{
		Step:    c.tr.Step(c.index),
		Index:   c.index,
		Total:   c.tr.Len(),
		Playing: c.playing,
		First:   slices.Clone(c.first),
		Second:  slices.Clone(c.second),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
