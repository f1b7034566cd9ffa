package sim

import (
	"testing"
)

// newProc builds a process descriptor the way the script loader would.
func newProc(pid, lifespan, prio, start int, claims ...*ResourceClaim) *Process {
	return &Process{
		PID:              pid,
		Lifespan:         lifespan,
		Priority:         prio,
		OriginalPriority: prio,
		StartTick:        start,
		Pending:          claims,
	}
}

func claim(resource, at, duration int) *ResourceClaim {
	return &ResourceClaim{ResourceID: resource, At: at, Duration: duration}
}

// runSim drives a simulation to completion and returns the simulator
// plus the recorded trace.
func runSim(t *testing.T, policy Scheduler, procs ...*Process) (*Simulator, *RecordingTracer) {
	t.Helper()
	tracer := &RecordingTracer{}
	s := NewSimulator(Config{Policy: policy, Tracer: tracer}, procs)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s, tracer
}

// funcTracer adapts a closure to the Tracer interface so tests can probe
// live simulation state at event boundaries.
type funcTracer func(Event)

func (f funcTracer) Emit(e Event) { f(e) }

// multiTracer fans events out to several tracers.
type multiTracer []Tracer

func (m multiTracer) Emit(e Event) {
	for _, t := range m {
		t.Emit(e)
	}
}

// assertSingleLocation fails the test if any process is linked into more
// than one structural collection, or carries a Location tag inconsistent
// with its actual membership.
func assertSingleLocation(t *testing.T, s *Simulator) {
	t.Helper()
	memberships := make(map[int]int)
	for _, p := range s.ForkQueue.Items() {
		memberships[p.PID]++
		if p.Location != LocForkQueue {
			t.Errorf("process %d in fork queue but tagged %s", p.PID, p.Location)
		}
	}
	for _, p := range s.ReadyQueue.Items() {
		memberships[p.PID]++
		if p.Location != LocReadyQueue {
			t.Errorf("process %d in ready queue but tagged %s", p.PID, p.Location)
		}
	}
	for _, r := range s.Resources {
		for _, p := range r.WaitQueue.Items() {
			memberships[p.PID]++
			if p.Location != LocWaitQueue {
				t.Errorf("process %d in resource %d wait queue but tagged %s", p.PID, r.ID, p.Location)
			}
		}
	}
	for pid, n := range memberships {
		if n > 1 {
			t.Errorf("process %d linked into %d collections at tick %d", pid, n, s.Clock)
		}
	}
}
