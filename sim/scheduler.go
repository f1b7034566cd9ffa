package sim

import (
	"fmt"
)

// Scheduler is the policy contract. The engine consults Schedule exactly
// once per tick and calls Acquire/Release on behalf of the running
// process when its acquisition plan fires. Policies own no state of
// their own beyond tunables: they operate on the queues and resource
// table of the Simulator passed to every call.
//
// Schedule returns the process to run this tick, or nil to idle. The
// previous tick's runner is available as sim.Current; a policy that
// keeps it simply returns it, a preempting policy re-queues it and
// returns another. Any process taken from the ready queue must be
// detached (via ProcessQueue.Remove) before it is returned.
//
// Acquire reports whether the running process obtained the resource. On
// failure the policy must have parked sim.Current on the resource's wait
// queue (or wherever its protocol dictates) with StatusWaiting.
//
// Release transfers or clears ownership of the resource and may wake one
// waiter. Calling Release for a resource not owned by sim.Current is a
// contract violation and panics.
type Scheduler interface {
	Name() string
	Schedule(sim *Simulator) *Process
	Acquire(sim *Simulator, resourceID int) bool
	Release(sim *Simulator, resourceID int)
}

// ForkHook is implemented by policies that want to observe processes
// entering the ready queue for the first time.
type ForkHook interface {
	Forked(sim *Simulator, p *Process)
}

// ExitHook is implemented by policies that want to observe process exit,
// before the record is released.
type ExitHook interface {
	Exiting(sim *Simulator, p *Process)
}

// Initializer is implemented by policies that need setup before the
// first tick. A non-nil error aborts the simulation before it starts.
type Initializer interface {
	Initialize(sim *Simulator) error
}

// Finalizer is implemented by policies that need teardown after the
// simulation completes normally.
type Finalizer interface {
	Finalize(sim *Simulator)
}

// ValidPolicies is the set of recognized policy names.
// Shared by bundle validation and NewScheduler to avoid duplication.
var ValidPolicies = map[string]bool{
	"":     true, // defaults to fifo
	"fifo": true,
	"sjf":  true,
	"srtf": true,
	"rr":   true,
	"prio": true,
	"pa":   true,
	"pcp":  true,
	"pip":  true,
}

// IsValidPolicy reports whether name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fifo" (default), "sjf", "srtf", "rr", "prio", "pa",
// "pcp", "pip". Empty string defaults to FIFO (for CLI flag default
// compatibility). Panics on unrecognized names.
func NewScheduler(name string) Scheduler {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case "", "fifo":
		return &FIFOScheduler{}
	case "sjf":
		return &SJFScheduler{}
	case "srtf":
		return &SRTFScheduler{}
	case "rr":
		return &RoundRobinScheduler{Quantum: DefaultQuantum}
	case "prio":
		return &PriorityScheduler{}
	case "pa":
		return &AgingScheduler{}
	case "pcp":
		return &CeilingScheduler{}
	case "pip":
		return &InheritanceScheduler{}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
