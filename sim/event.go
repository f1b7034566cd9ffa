package sim

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// EventKind enumerates the trace events the engine emits, one or more per
// tick. They are the only output surface of the core: printing lives in
// whatever Tracer the caller installs.
type EventKind int

const (
	EventForked   EventKind = iota // process moved fork queue -> ready queue
	EventRun                       // process made one tick of progress
	EventBlocked                   // process failed a resource acquisition
	EventAcquired                  // process acquired a resource
	EventReleased                  // process released a resource
	EventIdle                      // no process was selected this tick
	EventExited                    // process completed its lifespan
)

func (k EventKind) String() string {
	switch k {
	case EventForked:
		return "forked"
	case EventRun:
		return "run"
	case EventBlocked:
		return "blocked"
	case EventAcquired:
		return "acquired"
	case EventReleased:
		return "released"
	case EventIdle:
		return "idle"
	case EventExited:
		return "exited"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single trace record tagged with the tick it occurred on.
// Resource is meaningful only for EventAcquired/EventReleased; PID is
// meaningful for everything but EventIdle.
type Event struct {
	Tick     int
	Kind     EventKind
	PID      int
	Resource int
}

// Glyph renders the event in the simulator's column notation: one
// four-column lane per PID, N for fork, the PID itself for a run tick,
// = for blocked, +n/-n for resource traffic, X for exit.
func (e Event) Glyph() string {
	var text string
	switch e.Kind {
	case EventForked:
		text = "N"
	case EventRun:
		text = fmt.Sprint(e.PID)
	case EventBlocked:
		text = "="
	case EventAcquired:
		text = fmt.Sprintf("+%d", e.Resource)
	case EventReleased:
		text = fmt.Sprintf("-%d", e.Resource)
	case EventExited:
		text = "X"
	case EventIdle:
		return fmt.Sprintf("%3d: idle", e.Tick)
	}
	return fmt.Sprintf("%3d: %s%s", e.Tick, strings.Repeat("    ", e.PID), text)
}

// Tracer consumes the engine's per-tick event stream.
// Emit is called synchronously from the tick loop; implementations must
// not mutate simulation state.
type Tracer interface {
	Emit(e Event)
}

// ConsoleTracer writes the column-notation trace to an io.Writer and
// mirrors each event to logrus at debug level.
type ConsoleTracer struct {
	W io.Writer
}

func (c *ConsoleTracer) Emit(e Event) {
	logrus.Debugf("[tick %3d] %s pid=%d res=%d", e.Tick, e.Kind, e.PID, e.Resource)
	fmt.Fprintln(c.W, e.Glyph())
}

// RecordingTracer retains every emitted event in order. Used by tests and
// diagnostic tooling to assert on exact schedules.
type RecordingTracer struct {
	Events []Event
}

func (r *RecordingTracer) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Runs returns the PIDs of EventRun events in emission order: the
// schedule as a flat sequence of who ran each non-idle, non-blocked tick.
func (r *RecordingTracer) Runs() []int {
	var pids []int
	for _, e := range r.Events {
		if e.Kind == EventRun {
			pids = append(pids, e.PID)
		}
	}
	return pids
}

// Filter returns the events of one kind, in emission order.
func (r *RecordingTracer) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// nopTracer drops every event; installed when the caller passes nil.
type nopTracer struct{}

func (nopTracer) Emit(Event) {}
