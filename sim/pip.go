package sim

// InheritanceScheduler implements the priority-inheritance protocol on
// top of the preemptive priority pick: a blocked requester donates its
// priority to a lower-priority owner so the owner can finish and
// release. Inheritance is single-level: a donation does not propagate
// through chains of blocked owners.
type InheritanceScheduler struct{}

func (*InheritanceScheduler) Name() string { return "Priority + Inheritance Protocol" }

func (*InheritanceScheduler) Schedule(sim *Simulator) *Process {
	return preemptivePriorityPick(sim)
}

func (*InheritanceScheduler) Acquire(sim *Simulator, resourceID int) bool {
	r := sim.Resources[resourceID]
	cur := sim.Current

	if r.Owner == nil {
		r.Owner = cur
		cur.Status = StatusWaiting
		requeueRunner(sim, cur)
		return true
	}

	// Blocked behind a lower-priority owner: lend it ours.
	if r.Owner.Priority < cur.Priority {
		r.Owner.Priority = cur.Priority
	}

	cur.Status = StatusWaiting
	parkRunner(sim, cur, r)
	return false
}

func (*InheritanceScheduler) Release(sim *Simulator, resourceID int) {
	r := ownedResource(sim, resourceID)
	// Any inherited boost ends exactly here.
	r.Owner.Priority = r.Owner.OriginalPriority
	r.Owner = nil
	wakeHighestPriority(sim, r)
}
