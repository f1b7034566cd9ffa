// Defines the Process struct that models a single simulated process.
// Tracks identity, lifespan/age progress, priority, and the resource
// acquisition plan declared by the input script.

package sim

import (
	"fmt"
)

// Status represents the lifecycle state of a process.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusWaiting
	StatusExited
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "RDY"
	case StatusRunning:
		return "RUN"
	case StatusWaiting:
		return "WAT"
	case StatusExited:
		return "EXT"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Location is the structural slot a process currently occupies. A process
// is linked into at most one queue at a time; the running slot is held as
// a pointer on the Simulator, not as a queue membership. Queue operations
// keep this tag up to date so the engine can assert detachment cheaply
// instead of walking intrusive list links.
type Location int

const (
	// LocNone means the process is detached from every queue
	// (it is either running, about to run, or exited).
	LocNone Location = iota
	LocForkQueue
	LocReadyQueue
	LocWaitQueue
)

func (l Location) String() string {
	switch l {
	case LocNone:
		return "none"
	case LocForkQueue:
		return "fork-queue"
	case LocReadyQueue:
		return "ready-queue"
	case LocWaitQueue:
		return "wait-queue"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// ResourceClaim is one entry of a process's resource acquisition plan.
// At is the age at which the acquisition fires; Duration is the number of
// ticks the resource is held once acquired. While pending, Duration is the
// declared hold time; once held, it counts down to the release tick.
type ResourceClaim struct {
	ResourceID int
	At         int
	Duration   int
}

// Process models a single process's lifecycle in the simulation.
// Each process has:
// - a unique PID and an immutable total lifespan (ticks of work)
// - age, the ticks of work completed so far (0 <= Age <= Lifespan)
// - a mutable priority plus the immutable original baseline
// - an ordered plan of resource claims and the claims currently held
type Process struct {
	PID      int
	Lifespan int
	Age      int

	Priority         int // current, mutated by priority protocols and aging
	OriginalPriority int // immutable baseline set at load time

	StartTick int // tick at which the process becomes eligible to run

	Status   Status
	Location Location

	Pending []*ResourceClaim // acquisition plan, in script declaration order
	Holding []*ResourceClaim // currently held claims with remaining durations
}

// Remaining returns the ticks of work left before the process exits.
func (p *Process) Remaining() int {
	return p.Lifespan - p.Age
}

// This method returns a human-readable string representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("%2d (%s): %d + %d/%d at %d",
		p.PID, p.Status, p.StartTick, p.Age, p.Lifespan, p.Priority)
}
