// Package sim provides the core tick-driven simulation engine for
// schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (READY → RUNNING → WAITING → EXITED)
//     and the resource acquisition plan
//   - scheduler.go: the Scheduler contract the eight policies implement
//   - simulator.go: the tick loop (fork, schedule, retire, run, advance)
//
// # Architecture
//
// The engine operates in rounds, one per tick. Each round forks due
// processes into the ready queue, asks the active policy to schedule,
// retires the previous runner (exiting it when its lifespan is spent),
// and executes the selection: resource acquisitions planned for the
// process's current age fire in script order, and only a fully
// unblocked tick advances its age and performs releases. The loop
// terminates when nothing is runnable and nothing is left to fork; a
// protocol that starves a waiter forever therefore runs forever.
//
// Execution is single-threaded and synchronous. "Blocking" is data
// state (StatusWaiting plus wait-queue membership) inspected on later
// ticks, never a suspended goroutine.
//
// # Policies
//
// One file per policy: fifo.go, sjf.go, srtf.go, rr.go (FCFS resource
// protocol, protocol.go) and prio.go, aging.go, pcp.go, pip.go
// (priority resource protocol with ceiling/inheritance variants).
// Policies are constructed by name via NewScheduler.
//
// # Edges
//
// script.go loads the textual process script, bundle.go the optional
// YAML tuning, event.go defines the trace stream Tracers consume, and
// snapshot.go/metrics.go expose the diagnostic surfaces.
package sim
