package sim

// FIFOScheduler runs processes in arrival order and never preempts.
// Resources are served first-come-first-served.
type FIFOScheduler struct {
	fcfsProtocol
}

func (*FIFOScheduler) Name() string { return "FIFO" }

func (*FIFOScheduler) Initialize(*Simulator) error { return nil }

func (*FIFOScheduler) Finalize(*Simulator) {}

func (*FIFOScheduler) Schedule(sim *Simulator) *Process {
	cur := sim.Current

	// Keep the runner while it is unblocked and has lifespan left.
	// A blocked runner already sits on some resource's wait queue.
	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		return cur
	}

	return sim.ReadyQueue.PopFront()
}
