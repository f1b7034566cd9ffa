package sim

// SRTFScheduler preempts the runner whenever a ready process's declared
// lifespan undercuts the runner's remaining time. A ready candidate is
// compared by its total lifespan, not its remaining time: exact for
// processes that have never run, stale for a process that was preempted
// back into the ready queue with age already accrued. That literal
// comparison is preserved deliberately; see the behavior pinned in
// TestSRTF_PreemptedProcessComparesByLifespan.
type SRTFScheduler struct {
	fcfsProtocol
}

func (*SRTFScheduler) Name() string { return "Shortest Remaining Time First" }

func (*SRTFScheduler) Schedule(sim *Simulator) *Process {
	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		if challenger := shortestReady(sim.ReadyQueue); challenger != nil && challenger.Lifespan < cur.Remaining() {
			sim.ReadyQueue.Remove(challenger)
			// The preempted runner goes back at the head so it is the
			// first candidate at its lifespan when it becomes shortest again.
			sim.ReadyQueue.PushFront(cur)
			return challenger
		}
		return cur
	}

	return takeShortest(sim.ReadyQueue)
}

// shortestReady returns the queue member with the minimum lifespan
// without detaching it, ties broken by queue position. Nil when empty.
func shortestReady(q *ProcessQueue) *Process {
	items := q.Items()
	if len(items) == 0 {
		return nil
	}
	shortest := items[0]
	for _, p := range items[1:] {
		if p.Lifespan < shortest.Lifespan {
			shortest = p
		}
	}
	return shortest
}
