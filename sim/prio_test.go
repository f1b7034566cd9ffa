package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_PicksHighestReady(t *testing.T) {
	// GIVEN three processes with priorities 1, 5 and 3
	procs := []*Process{
		newProc(1, 2, 1, 0),
		newProc(2, 2, 5, 0),
		newProc(3, 2, 3, 0),
	}

	// WHEN the simulation runs
	_, tracer := runSim(t, &PriorityScheduler{}, procs...)

	// THEN they run in descending priority order
	assert.Equal(t, []int{2, 2, 3, 3, 1, 1}, tracer.Runs())
}

func TestPriority_PickIsNotPreemptive(t *testing.T) {
	// A higher-priority arrival waits until the runner finishes.
	p1 := newProc(1, 3, 1, 0)
	p2 := newProc(2, 1, 9, 1)

	_, tracer := runSim(t, &PriorityScheduler{}, p1, p2)

	assert.Equal(t, []int{1, 1, 1, 2}, tracer.Runs())
}

func TestPriority_SuccessfulAcquire_RequeuesRunner(t *testing.T) {
	// GIVEN a single process whose plan grants on its first tick
	p := newProc(1, 2, 2, 0, claim(0, 0, 1))

	// THEN at the moment of the grant the runner sits on the ready
	// queue in WAITING status, forcing a fresh pick next tick
	var s *Simulator
	probe := funcTracer(func(e Event) {
		if e.Kind != EventAcquired {
			return
		}
		assert.Equal(t, LocReadyQueue, p.Location)
		assert.Equal(t, StatusWaiting, p.Status)
	})
	s = NewSimulator(Config{Policy: &PriorityScheduler{}, Tracer: probe}, []*Process{p})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	assert.Equal(t, StatusExited, p.Status)
}

func TestPriority_Release_WakesHighestPriorityWaiter(t *testing.T) {
	// GIVEN a low-priority holder and two waiters that block in
	// ascending-priority order
	procs := []*Process{
		newProc(1, 4, 1, 0, claim(0, 0, 4)),
		newProc(2, 2, 3, 1, claim(0, 0, 1)),
		newProc(3, 2, 5, 2, claim(0, 0, 1)),
	}

	// WHEN the holder releases
	_, tracer := runSim(t, &PriorityScheduler{}, procs...)

	// THEN pid 3 is woken ahead of pid 2 despite blocking later
	var got []Event
	for _, e := range tracer.Filter(EventAcquired) {
		got = append(got, e)
	}
	want := []Event{
		{Tick: 0, Kind: EventAcquired, PID: 1},
		{Tick: 6, Kind: EventAcquired, PID: 3},
		{Tick: 8, Kind: EventAcquired, PID: 2},
	}
	assert.Equal(t, want, got)
}
