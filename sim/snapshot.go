package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Snapshot is a point-in-time view of the simulation state: the running
// process, the ready queue, and every resource with an owner or waiters.
// Diagnostic surface only; nothing in the control flow consumes it.
type Snapshot struct {
	Tick      int
	Running   *Process // nil when the CPU is idle
	Ready     []*Process
	Resources []ResourceSnapshot
}

// ResourceSnapshot describes one contended or held resource.
type ResourceSnapshot struct {
	ID      int
	Owner   *Process // nil when free but waited on
	Waiters []*Process
}

// Snapshot captures the current state. The process pointers are live;
// callers must not mutate through them.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.Clock,
		Running: s.Current,
		Ready:   append([]*Process(nil), s.ReadyQueue.Items()...),
	}
	for _, r := range s.Resources {
		if r.Owner == nil && r.WaitQueue.Len() == 0 {
			continue
		}
		snap.Resources = append(snap.Resources, ResourceSnapshot{
			ID:      r.ID,
			Owner:   r.Owner,
			Waiters: append([]*Process(nil), r.WaitQueue.Items()...),
		})
	}
	return snap
}

func (snap Snapshot) String() string {
	var sb strings.Builder

	sb.WriteString("***** CURRENT *********\n")
	if snap.Running != nil {
		fmt.Fprintf(&sb, "%s\n", snap.Running)
	}

	sb.WriteString("***** READY QUEUE *****\n")
	for _, p := range snap.Ready {
		fmt.Fprintf(&sb, "%s\n", p)
	}

	sb.WriteString("***** RESOURCES *******\n")
	for _, r := range snap.Resources {
		if r.Owner != nil {
			fmt.Fprintf(&sb, "%2d: owned by %d\n", r.ID, r.Owner.PID)
		} else {
			fmt.Fprintf(&sb, "%2d: owned by no one\n", r.ID)
		}
		for _, p := range r.Waiters {
			fmt.Fprintf(&sb, "    %d is waiting\n", p.PID)
		}
	}

	return sb.String()
}

// DumpStatus logs the current snapshot at debug level. Callable from
// anywhere (policies included) while chasing a scheduling bug.
func (s *Simulator) DumpStatus() {
	logrus.Debugf("\n%s", s.Snapshot())
}
