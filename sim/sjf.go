package sim

// SJFScheduler picks the ready process with the smallest total lifespan.
// Non-preemptive: a running process is never interrupted.
// Warning: short jobs can starve a long one under sustained arrivals.
type SJFScheduler struct {
	fcfsProtocol
}

func (*SJFScheduler) Name() string { return "Shortest-Job First" }

func (*SJFScheduler) Schedule(sim *Simulator) *Process {
	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		return cur
	}

	return takeShortest(sim.ReadyQueue)
}

// takeShortest detaches and returns the queue member with the minimum
// lifespan, ties broken by queue position. Returns nil on an empty queue.
func takeShortest(q *ProcessQueue) *Process {
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
	q.Remove(shortest)
	return shortest
}
