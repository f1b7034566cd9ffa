package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeiling_HolderRunsAtSystemMaximum(t *testing.T) {
	// GIVEN a priority-2 process holding resource 0 for two ticks
	p := newProc(1, 3, 2, 0, claim(0, 0, 2))

	// WHEN the simulation runs
	var s *Simulator
	probe := funcTracer(func(e Event) {
		switch e.Kind {
		case EventAcquired:
			assert.Equal(t, s.MaxPriority, p.Priority, "priority during hold")
		case EventReleased:
			assert.Equal(t, 2, p.Priority, "priority after release")
		}
	})
	s = NewSimulator(Config{Policy: &CeilingScheduler{}, Tracer: probe}, []*Process{p})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the ceiling held exactly for the acquire/release window
	assert.Equal(t, 2, p.Priority)
	assert.Equal(t, StatusExited, p.Status)
}

func TestCeiling_HolderIsNotPreemptedDuringHold(t *testing.T) {
	// GIVEN a priority-1 holder and a priority-9 process arriving mid-hold
	p1 := newProc(1, 3, 1, 0, claim(0, 0, 2))
	p2 := newProc(2, 1, 9, 1)

	// WHEN the simulation runs
	_, tracer := runSim(t, &CeilingScheduler{}, p1, p2)

	// THEN pid 2 waits out the hold and preempts immediately after the
	// release drops pid 1 back to its baseline
	assert.Equal(t, []int{1, 1, 2, 1}, tracer.Runs())
}

func TestCeiling_Release_WakesHighestPriorityWaiter(t *testing.T) {
	// GIVEN an owner at the ceiling and two waiters parked in
	// ascending-priority order
	policy := &CeilingScheduler{}
	s := NewSimulator(Config{Policy: policy}, nil)
	owner := newProc(1, 4, 2, 0)
	owner.Priority = s.MaxPriority
	w2 := newProc(2, 2, 3, 0)
	w3 := newProc(3, 2, 5, 0)
	w2.Status = StatusWaiting
	w3.Status = StatusWaiting
	s.Resources[0].Owner = owner
	s.Resources[0].WaitQueue.PushBack(w2)
	s.Resources[0].WaitQueue.PushBack(w3)
	s.Current = owner

	// WHEN the owner releases
	policy.Release(s, 0)

	// THEN the owner is back at baseline and the priority-5 waiter is
	// woken ahead of the one that blocked first
	assert.Equal(t, 2, owner.Priority)
	assert.Nil(t, s.Resources[0].Owner)
	assert.Equal(t, w3, s.ReadyQueue.PopFront())
	assert.Equal(t, StatusReady, w3.Status)
	assert.Equal(t, 1, s.Resources[0].WaitQueue.Len())
	assert.Equal(t, StatusWaiting, w2.Status)
}
