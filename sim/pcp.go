package sim

// CeilingScheduler implements the priority-ceiling protocol on top of
// the preemptive priority pick: a process that acquires a resource runs
// at the system maximum priority until it releases, which bounds how
// long a high-priority process can be blocked behind it. The ceiling
// used is the single global maximum rather than a per-resource computed
// ceiling.
type CeilingScheduler struct{}

func (*CeilingScheduler) Name() string { return "Priority + Ceiling Protocol" }

func (*CeilingScheduler) Schedule(sim *Simulator) *Process {
	return preemptivePriorityPick(sim)
}

func (*CeilingScheduler) Acquire(sim *Simulator, resourceID int) bool {
	r := sim.Resources[resourceID]
	cur := sim.Current

	if r.Owner == nil {
		r.Owner = cur
		// Ceiling in effect for the whole hold.
		cur.Priority = sim.MaxPriority
		cur.Status = StatusWaiting
		requeueRunner(sim, cur)
		return true
	}

	cur.Status = StatusWaiting
	parkRunner(sim, cur, r)
	return false
}

func (*CeilingScheduler) Release(sim *Simulator, resourceID int) {
	r := ownedResource(sim, resourceID)
	// Restore the baseline before ownership clears.
	r.Owner.Priority = r.Owner.OriginalPriority
	r.Owner = nil
	wakeHighestPriority(sim, r)
}

// preemptivePriorityPick keeps the runner unless some ready process's
// priority has reached it, in which case the runner rejoins the tail and
// the highest-priority ready process takes over. Shared by the ceiling
// and inheritance protocols, which adjust priorities only at their
// acquire/release points: no aging, no reset at pick time.
func preemptivePriorityPick(sim *Simulator) *Process {
	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		if max, ok := highestReadyPriority(sim.ReadyQueue); ok && cur.Priority <= max {
			sim.ReadyQueue.PushBack(cur)
			return takeHighestPriority(sim.ReadyQueue)
		}
		return cur
	}

	return takeHighestPriority(sim.ReadyQueue)
}
