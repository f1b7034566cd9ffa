// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultMaxPriority is the system priority ceiling when the policy
// bundle does not override it: the cap for aging promotion and the
// ceiling value granted by the Priority-Ceiling protocol.
const DefaultMaxPriority = 255

// Config carries the tunables NewSimulator needs beyond the workload
// itself. Zero values select the documented defaults.
type Config struct {
	Policy       Scheduler // nil = FIFO
	NumResources int       // 0 = DefaultNumResources
	MaxPriority  int       // 0 = DefaultMaxPriority
	Tracer       Tracer    // nil = discard events
}

// Simulator is the core object that holds the simulation clock, the
// system state, and the tick loop. Policies mutate the queues, the
// resource table and process priorities only through the Scheduler
// contract; nothing outside Run advances the clock.
type Simulator struct {
	Clock int

	ForkQueue  *ProcessQueue // admitted processes whose StartTick is in the future
	ReadyQueue *ProcessQueue // processes eligible to run
	Resources  []*Resource
	Current    *Process // the process running this tick, nil when idle

	// Processes holds every admitted process in script order, exited
	// ones included. Diagnostic surface; the queues drive control flow.
	Processes []*Process

	Metrics *Metrics

	// MaxPriority is the system ceiling: aging never promotes past it
	// and the ceiling protocol raises owners exactly to it.
	MaxPriority int

	policy Scheduler
	tracer Tracer
}

// NewSimulator builds a simulator over the given process list. Processes
// start in the fork queue regardless of StartTick; the first tick's fork
// round moves the due ones out.
func NewSimulator(cfg Config, procs []*Process) *Simulator {
	if cfg.Policy == nil {
		cfg.Policy = &FIFOScheduler{}
	}
	if cfg.NumResources == 0 {
		cfg.NumResources = DefaultNumResources
	}
	if cfg.MaxPriority == 0 {
		cfg.MaxPriority = DefaultMaxPriority
	}
	if cfg.Tracer == nil {
		cfg.Tracer = nopTracer{}
	}

	s := &Simulator{
		ForkQueue:   NewProcessQueue(LocForkQueue),
		ReadyQueue:  NewProcessQueue(LocReadyQueue),
		Resources:   newResourceTable(cfg.NumResources),
		Processes:   procs,
		Metrics:     NewMetrics(),
		MaxPriority: cfg.MaxPriority,
		policy:      cfg.Policy,
		tracer:      cfg.Tracer,
	}
	for _, p := range procs {
		p.Status = StatusReady
		s.ForkQueue.PushBack(p)
	}
	return s
}

// Policy returns the active scheduling policy.
func (s *Simulator) Policy() Scheduler {
	return s.policy
}

// Run drives the tick loop to completion. Each tick proceeds strictly:
// fork due processes, ask the policy to schedule, retire the previous
// runner, then either idle or execute the selection (acquisitions, one
// tick of aging, releases). The loop ends only when nothing was selected
// and both the fork and ready queues are empty; a protocol that starves
// a waiter forever runs forever.
func (s *Simulator) Run() error {
	if init, ok := s.policy.(Initializer); ok {
		if err := init.Initialize(s); err != nil {
			return fmt.Errorf("initializing %s policy: %w", s.policy.Name(), err)
		}
	}
	logrus.Infof("Simulating %s policy over %d processes", s.policy.Name(), len(s.Processes))

	for {
		s.forkDue()

		prev := s.Current
		s.Current = s.policy.Schedule(s)

		// If the system ran a process in the previous tick, retire it:
		// demote it out of RUNNING (the policy already decided whether
		// to keep it) and decommission it if it has completed.
		if prev != nil {
			if prev.Status == StatusRunning {
				prev.Status = StatusReady
			}
			if prev.Age == prev.Lifespan {
				prev.Status = StatusExited
				s.exitProcess(prev)
			}
		}

		if s.Current == nil {
			// Quit the simulation if no pending process exists.
			if s.ReadyQueue.Len() == 0 && s.ForkQueue.Len() == 0 {
				break
			}
			s.emit(Event{Tick: s.Clock, Kind: EventIdle})
			s.Metrics.IdleTicks++
		} else {
			if prev != nil && prev != s.Current && prev.Status == StatusReady && prev.Age < prev.Lifespan {
				s.Metrics.Preemptions++
			}
			if prev != s.Current {
				s.Metrics.ContextSwitches++
			}
			s.runCurrent()
		}

		s.Clock++
	}

	if fin, ok := s.policy.(Finalizer); ok {
		fin.Finalize(s)
	}
	logrus.Infof("[tick %3d] Simulation ended", s.Clock)
	return nil
}

// forkDue moves every fork-queue process whose start tick has arrived
// into the ready queue and notifies the policy.
func (s *Simulator) forkDue() {
	due := make([]*Process, 0)
	for _, p := range s.ForkQueue.Items() {
		if p.StartTick <= s.Clock {
			due = append(due, p)
		}
	}
	for _, p := range due {
		s.ForkQueue.Remove(p)
		p.Status = StatusReady
		s.ReadyQueue.PushBack(p)
		s.emit(Event{Tick: s.Clock, Kind: EventForked, PID: p.PID})
		if hook, ok := s.policy.(ForkHook); ok {
			hook.Forked(s, p)
		}
	}
}

// runCurrent executes the selected process for one tick. If every plan
// entry due at its current age is acquired, the process ages by one and
// performs any releases whose countdown ends; otherwise it is blocked
// and makes no progress this tick.
func (s *Simulator) runCurrent() {
	cur := s.Current
	cur.Status = StatusRunning

	// The policy must hand over a detached process.
	if cur.Location != LocNone {
		panic(fmt.Sprintf("scheduled process %d still linked into %s", cur.PID, cur.Location))
	}

	if s.runAcquisitions(cur) {
		s.emit(Event{Tick: s.Clock, Kind: EventRun, PID: cur.PID})
		cur.Age++
		s.Metrics.BusyTicks++
		s.runReleases(cur)
	} else {
		// Blocked while acquiring: no aging, no releases this tick.
		s.emit(Event{Tick: s.Clock, Kind: EventBlocked, PID: cur.PID})
		s.Metrics.BlockedTicks++
	}
}

// runAcquisitions fires every pending plan entry scheduled for the
// process's current age, in script order. The first failed acquisition
// stops the scan; entries granted earlier in the same tick stay granted.
func (s *Simulator) runAcquisitions(p *Process) bool {
	for i := 0; i < len(p.Pending); {
		claim := p.Pending[i]
		if claim.At != p.Age {
			i++
			continue
		}
		if !s.policy.Acquire(s, claim.ResourceID) {
			return false
		}
		p.Pending = append(p.Pending[:i], p.Pending[i+1:]...)
		p.Holding = append(p.Holding, claim)
		s.emit(Event{Tick: s.Clock, Kind: EventAcquired, PID: p.PID, Resource: claim.ResourceID})
	}
	return true
}

// runReleases decrements the countdown of every held claim and releases
// the ones that reach zero this tick.
func (s *Simulator) runReleases(p *Process) {
	for i := 0; i < len(p.Holding); {
		claim := p.Holding[i]
		claim.Duration--
		if claim.Duration > 0 {
			i++
			continue
		}
		s.policy.Release(s, claim.ResourceID)
		p.Holding = append(p.Holding[:i], p.Holding[i+1:]...)
		s.emit(Event{Tick: s.Clock, Kind: EventReleased, PID: p.PID, Resource: claim.ResourceID})
	}
}

// exitProcess decommissions a completed process. A process reaching exit
// while still linked into a queue, holding a resource, or carrying
// pending acquisitions is a contract violation in the active policy.
func (s *Simulator) exitProcess(p *Process) {
	if p.Location != LocNone {
		panic(fmt.Sprintf("process %d exiting while linked into %s", p.PID, p.Location))
	}
	if len(p.Holding) != 0 {
		panic(fmt.Sprintf("process %d exiting while holding %d resource(s)", p.PID, len(p.Holding)))
	}
	if len(p.Pending) != 0 {
		panic(fmt.Sprintf("process %d exiting with %d pending acquisition(s)", p.PID, len(p.Pending)))
	}

	if hook, ok := s.policy.(ExitHook); ok {
		hook.Exiting(s, p)
	}

	s.emit(Event{Tick: s.Clock, Kind: EventExited, PID: p.PID})
	s.Metrics.recordExit(p, s.Clock)
}

func (s *Simulator) emit(e Event) {
	s.tracer.Emit(e)
}
