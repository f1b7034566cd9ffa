// Tracks simulation-wide and per-process performance metrics such as:
// throughput, turnaround and waiting times, CPU busy/idle balance,
// context switches and preemptions.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final
// reporting. Useful for comparing scheduling disciplines on the same
// workload.
type Metrics struct {
	CompletedProcesses int // processes that ran to exit
	BusyTicks          int // ticks where a process made progress
	BlockedTicks       int // ticks where the runner was blocked on a resource
	IdleTicks          int // ticks with no process selected
	ContextSwitches    int // ticks where the CPU changed hands
	Preemptions        int // switches away from a still-runnable process

	TurnaroundSum int // sum of (exit tick - start tick)
	WaitingSum    int // sum of (turnaround - lifespan)

	Turnarounds map[int]int // pid -> turnaround time in ticks
	Waitings    map[int]int // pid -> waiting time in ticks
}

func NewMetrics() *Metrics {
	return &Metrics{
		Turnarounds: make(map[int]int),
		Waitings:    make(map[int]int),
	}
}

// recordExit folds a completed process into the aggregates. The exit
// tick is the tick on which the engine observed age == lifespan.
func (m *Metrics) recordExit(p *Process, exitTick int) {
	turnaround := exitTick - p.StartTick
	waiting := turnaround - p.Lifespan

	m.CompletedProcesses++
	m.TurnaroundSum += turnaround
	m.WaitingSum += waiting
	m.Turnarounds[p.PID] = turnaround
	m.Waitings[p.PID] = waiting
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer, totalTicks int) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Completed Processes  : %d\n", m.CompletedProcesses)
	fmt.Fprintf(w, "Total Ticks          : %d\n", totalTicks)
	fmt.Fprintf(w, "Busy/Blocked/Idle    : %d/%d/%d\n", m.BusyTicks, m.BlockedTicks, m.IdleTicks)
	fmt.Fprintf(w, "Context Switches     : %d\n", m.ContextSwitches)
	fmt.Fprintf(w, "Preemptions          : %d\n", m.Preemptions)
	if m.CompletedProcesses > 0 {
		avgTurnaround := float64(m.TurnaroundSum) / float64(m.CompletedProcesses)
		avgWaiting := float64(m.WaitingSum) / float64(m.CompletedProcesses)
		fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", avgTurnaround)
		fmt.Fprintf(w, "Average Waiting      : %.2f ticks\n", avgWaiting)
	}
}
