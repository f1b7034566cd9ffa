// Shared resource acquire/release protocols. FIFO, SJF, SRTF and
// Round-Robin serve resources first-come-first-served; the priority
// family wakes the highest-priority waiter instead, and its acquire
// path forces a fresh scheduling decision after every grant.

package sim

import (
	"fmt"
)

// fcfsProtocol is the default first-come-first-served resource protocol,
// embedded by the non-priority policies.
type fcfsProtocol struct{}

func (fcfsProtocol) Acquire(sim *Simulator, resourceID int) bool {
	r := sim.Resources[resourceID]

	if r.Owner == nil {
		// The resource is not owned by anyone. Take it.
		r.Owner = sim.Current
		return true
	}

	// Taken: park the requester on the wait queue, in blocking order.
	// The engine will call Schedule next tick to pick someone else.
	sim.Current.Status = StatusWaiting
	r.WaitQueue.PushBack(sim.Current)
	return false
}

func (fcfsProtocol) Release(sim *Simulator, resourceID int) {
	r := ownedResource(sim, resourceID)
	r.Owner = nil

	// Wake ONE waiter (if any): the one that blocked first.
	if waiter := r.WaitQueue.PopFront(); waiter != nil {
		wake(sim, waiter)
	}
}

// prioProtocol is the priority-aware resource protocol shared by the
// Priority and Priority+Aging policies. A successful acquire re-queues
// the runner at the ready tail with WAITING status so the next tick's
// Schedule re-evaluates who should hold the CPU; release wakes the
// highest-priority waiter rather than the earliest one.
type prioProtocol struct{}

func (prioProtocol) Acquire(sim *Simulator, resourceID int) bool {
	return prioAcquire(sim, resourceID)
}

func (prioProtocol) Release(sim *Simulator, resourceID int) {
	r := ownedResource(sim, resourceID)
	r.Owner = nil
	wakeHighestPriority(sim, r)
}

func prioAcquire(sim *Simulator, resourceID int) bool {
	r := sim.Resources[resourceID]
	cur := sim.Current

	if r.Owner == nil {
		r.Owner = cur
		cur.Status = StatusWaiting
		requeueRunner(sim, cur)
		return true
	}

	cur.Status = StatusWaiting
	parkRunner(sim, cur, r)
	return false
}

// requeueRunner puts the runner back on the ready tail after a grant.
// An earlier grant in the same tick may have re-queued it already.
func requeueRunner(sim *Simulator, cur *Process) {
	if cur.Location == LocNone {
		sim.ReadyQueue.PushBack(cur)
	}
}

// parkRunner moves the runner onto a resource's wait queue, unlinking it
// from the ready queue first if a same-tick grant placed it there.
func parkRunner(sim *Simulator, cur *Process, r *Resource) {
	if cur.Location == LocReadyQueue {
		sim.ReadyQueue.Remove(cur)
	}
	r.WaitQueue.PushBack(cur)
}

// wakeHighestPriority wakes the highest-priority waiter of r, ties
// broken by blocking order. No-op if nobody is waiting.
func wakeHighestPriority(sim *Simulator, r *Resource) {
	if r.WaitQueue.Len() == 0 {
		return
	}

	max := 0
	for _, p := range r.WaitQueue.Items() {
		if p.Priority > max {
			max = p.Priority
		}
	}
	for _, p := range r.WaitQueue.Items() {
		if p.Priority == max {
			r.WaitQueue.Remove(p)
			wake(sim, p)
			return
		}
	}
}

// ownedResource returns the resource, panicking unless the running
// process is its owner. Release by a non-owner is a policy bug.
func ownedResource(sim *Simulator, resourceID int) *Resource {
	r := sim.Resources[resourceID]
	if r.Owner != sim.Current {
		panic(fmt.Sprintf("release of resource %d by non-owner process %d", resourceID, sim.Current.PID))
	}
	return r
}

// wake moves a process detached from a wait queue back to the ready
// queue. The target must be in WAITING status.
func wake(sim *Simulator, p *Process) {
	if p.Status != StatusWaiting {
		panic(fmt.Sprintf("wake of process %d in status %s", p.PID, p.Status))
	}
	p.Status = StatusReady
	sim.ReadyQueue.PushBack(p)
}
