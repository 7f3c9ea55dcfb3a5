// Package nestctx provides the coordinator's logging, timing, and
// cooperative-cancellation context, in the style of the recast package's
// BuildContext (progress/warning/error log categories, named timers).
package nestctx

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// LogCategory classifies one log entry.
type LogCategory int

const (
	Progress LogCategory = 1 + iota
	Warning
	Error
)

func (c LogCategory) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "?"
	}
}

// Message is one recorded log entry.
type Message struct {
	Category LogCategory
	Text     string
}

// Context accumulates log messages, named timers, and a cooperative
// cancellation flag shared across the coordinator's generation loop and
// its worker pool (spec.md §4.7, §5).
type Context struct {
	mu           sync.Mutex
	logEnabled   bool
	timerEnabled bool
	messages     []Message
	startTime    map[string]time.Time
	accTime      map[string]time.Duration

	cancelled atomic.Bool
}

// New returns a Context with logging and timers enabled or disabled per
// state.
func New(state bool) *Context {
	return &Context{
		logEnabled:   state,
		timerEnabled: state,
		startTime:    make(map[string]time.Time),
		accTime:      make(map[string]time.Duration),
	}
}

// EnableLog toggles whether Log appends entries.
func (c *Context) EnableLog(state bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logEnabled = state
}

// EnableTimer toggles whether StartTimer/StopTimer record durations.
func (c *Context) EnableTimer(state bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timerEnabled = state
}

// ResetLog discards all recorded messages.
func (c *Context) ResetLog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.logEnabled {
		c.messages = nil
	}
}

// ResetTimers discards all accumulated timer durations.
func (c *Context) ResetTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timerEnabled {
		c.accTime = make(map[string]time.Duration)
	}
}

// Log records a formatted message under category.
func (c *Context) Log(category LogCategory, format string, v ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.logEnabled {
		return
	}
	c.messages = append(c.messages, Message{Category: category, Text: fmt.Sprintf(format, v...)})
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, v ...interface{}) { c.Log(Progress, format, v...) }

// Warningf logs a warning message.
func (c *Context) Warningf(format string, v ...interface{}) { c.Log(Warning, format, v...) }

// Errorf logs an error message.
func (c *Context) Errorf(format string, v ...interface{}) { c.Log(Error, format, v...) }

// Messages returns a snapshot of every recorded message, in order.
func (c *Context) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// StartTimer begins (or resumes) the named timer.
func (c *Context) StartTimer(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer, adding the elapsed duration to its
// accumulated total.
func (c *Context) StopTimer(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.timerEnabled {
		return
	}
	start, ok := c.startTime[label]
	if !ok {
		return
	}
	c.accTime[label] += time.Since(start)
}

// AccumulatedTime returns the named timer's total recorded duration, or 0
// if timers are disabled or the timer was never started.
func (c *Context) AccumulatedTime(label string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}

// Cancel raises the cooperative cancellation flag. Safe to call
// concurrently with any other method.
func (c *Context) Cancel() {
	c.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called. The coordinator checks
// this at every generation-loop iteration and at work-queue boundaries
// (spec.md §5); in-flight tasks are allowed to finish.
func (c *Context) Cancelled() bool {
	return c.cancelled.Load()
}
