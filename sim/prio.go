package sim

// PriorityScheduler picks the highest-priority ready process (larger
// numbers run first). The pick itself is non-preemptive, but the
// priority resource protocol re-queues the runner after every grant, so
// acquire and release points still reorder execution.
type PriorityScheduler struct {
	prioProtocol
}

func (*PriorityScheduler) Name() string { return "Priority" }

func (*PriorityScheduler) Schedule(sim *Simulator) *Process {
	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		return cur
	}

	return takeHighestPriority(sim.ReadyQueue)
}

// takeHighestPriority detaches and returns the queue member with the
// maximum priority, ties broken by queue position. Nil when empty.
func takeHighestPriority(q *ProcessQueue) *Process {
	items := q.Items()
	if len(items) == 0 {
		return nil
	}
	best := items[0]
	for _, p := range items[1:] {
		if p.Priority > best.Priority {
			best = p
		}
	}
	q.Remove(best)
	return best
}

// highestReadyPriority returns the maximum priority among queue members.
// ok is false when the queue is empty.
func highestReadyPriority(q *ProcessQueue) (max int, ok bool) {
	items := q.Items()
	if len(items) == 0 {
		return 0, false
	}
	max = items[0].Priority
	for _, p := range items[1:] {
		if p.Priority > max {
			max = p.Priority
		}
	}
	return max, true
}
