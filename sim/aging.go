package sim

// AgingScheduler is the Priority policy with starvation protection:
// every ready process passed over this tick gains one priority point
// (capped at the system maximum), the chosen process drops back to its
// original baseline, and the runner is preempted as soon as any ready
// process's priority reaches its own.
type AgingScheduler struct {
	prioProtocol
}

func (*AgingScheduler) Name() string { return "Priority + Aging" }

func (a *AgingScheduler) Schedule(sim *Simulator) *Process {
	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		if max, ok := highestReadyPriority(sim.ReadyQueue); ok && cur.Priority <= max {
			// Preempted: back to the tail, then compete with the rest.
			sim.ReadyQueue.PushBack(cur)
			return a.pickAndAge(sim)
		}
		// The runner stays; everyone kept waiting ages by one.
		ageReady(sim)
		cur.Priority = cur.OriginalPriority
		return cur
	}

	return a.pickAndAge(sim)
}

// pickAndAge detaches the first ready process carrying the maximum
// priority, resets it to its baseline, and ages every process it passed
// over. Nil when the ready queue is empty.
func (a *AgingScheduler) pickAndAge(sim *Simulator) *Process {
	items := sim.ReadyQueue.Items()
	if len(items) == 0 {
		return nil
	}

	max := items[0].Priority
	for _, p := range items[1:] {
		if p.Priority > max {
			max = p.Priority
		}
	}

	var next *Process
	for _, p := range items {
		if next == nil && p.Priority == max {
			next = p
			continue
		}
		if p.Priority < sim.MaxPriority {
			p.Priority++
		}
	}

	sim.ReadyQueue.Remove(next)
	next.Priority = next.OriginalPriority
	return next
}

// ageReady bumps every ready process's priority by one, capped at the
// system maximum.
func ageReady(sim *Simulator) {
	for _, p := range sim.ReadyQueue.Items() {
		if p.Priority < sim.MaxPriority {
			p.Priority++
		}
	}
}
