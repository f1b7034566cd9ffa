package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAging_StarvedProcessClimbsAndPreempts(t *testing.T) {
	// GIVEN a high-priority long runner and a low-priority short job
	p1 := newProc(1, 6, 5, 0)
	p2 := newProc(2, 2, 1, 0)

	// WHEN the simulation runs
	_, tracer := runSim(t, &AgingScheduler{}, p1, p2)

	// THEN pid 2 ages from 1 up to 5 over four passed-over ticks and
	// preempts at tick 4; reset to its baseline, it is preempted right
	// back and finishes only after pid 1
	assert.Equal(t, []int{1, 1, 1, 1, 2, 1, 1, 2}, tracer.Runs())
}

func TestAging_PromotionCapsAtMaxPriority(t *testing.T) {
	// GIVEN a system ceiling of 3 and a runner above it at priority 4
	p1 := newProc(1, 5, 4, 0)
	p2 := newProc(2, 1, 1, 0)

	// WHEN pid 2 ages up to the cap and stops there
	var s *Simulator
	tracer := &RecordingTracer{}
	probe := funcTracer(func(Event) {
		for _, p := range s.Processes {
			if p.Priority > s.MaxPriority {
				t.Errorf("process %d promoted to %d past ceiling %d at tick %d", p.PID, p.Priority, s.MaxPriority, s.Clock)
			}
		}
	})
	s = NewSimulator(Config{
		Policy:      &AgingScheduler{},
		MaxPriority: 3,
		Tracer:      multiTracer{tracer, probe},
	}, []*Process{p1, p2})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the capped waiter never reaches the runner's priority and
	// runs only after it; uncapped it would have preempted at tick 3
	assert.Equal(t, []int{1, 1, 1, 1, 1, 2}, tracer.Runs())
}

func TestAging_ChosenProcessResetsToBaseline(t *testing.T) {
	// GIVEN a job that must age before it wins the CPU
	p1 := newProc(1, 6, 5, 0)
	p2 := newProc(2, 2, 1, 0)

	var sawPid2 bool
	var s *Simulator
	probe := funcTracer(func(e Event) {
		if e.Kind == EventRun && e.PID == 2 {
			sawPid2 = true
			assert.Equal(t, 1, p2.Priority, "tick %d", s.Clock)
		}
	})
	s = NewSimulator(Config{Policy: &AgingScheduler{}, Tracer: probe}, []*Process{p1, p2})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN every tick pid 2 ran, its priority was back at baseline
	assert.True(t, sawPid2)
}
