// Implements ProcessQueue, the ordered collection backing the fork queue,
// the ready queue, and each resource's wait queue. Every mutation keeps
// the member processes' Location tags consistent so the engine can verify
// structural invariants without walking the queues.

package sim

import (
	"fmt"
	"strings"
)

// ProcessQueue is a FIFO queue of processes. Policies scan it in order
// via Items and detach their pick via Remove; the engine pushes and pops
// at the ends. A process may be a member of at most one queue at a time.
type ProcessQueue struct {
	loc   Location // tag stamped onto members of this queue
	queue []*Process
}

// NewProcessQueue creates an empty queue whose members carry loc.
func NewProcessQueue(loc Location) *ProcessQueue {
	return &ProcessQueue{loc: loc}
}

// PushBack appends a process to the back of the queue.
// The process must be detached.
func (q *ProcessQueue) PushBack(p *Process) {
	if p.Location != LocNone {
		panic(fmt.Sprintf("PushBack: process %d already linked into %s", p.PID, p.Location))
	}
	p.Location = q.loc
	q.queue = append(q.queue, p)
}

// PushFront inserts a process at the front of the queue.
// Used by SRTF, which re-queues a preempted runner at the head.
func (q *ProcessQueue) PushFront(p *Process) {
	if p.Location != LocNone {
		panic(fmt.Sprintf("PushFront: process %d already linked into %s", p.PID, p.Location))
	}
	p.Location = q.loc
	q.queue = append([]*Process{p}, q.queue...)
}

// PopFront removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (q *ProcessQueue) PopFront() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	p.Location = LocNone
	return p
}

// Remove detaches p from the queue, wherever it sits.
// Panics if p is not a member; callers pick candidates from Items first.
func (q *ProcessQueue) Remove(p *Process) {
	for i, cand := range q.queue {
		if cand == p {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			p.Location = LocNone
			return
		}
	}
	panic(fmt.Sprintf("Remove: process %d not in %s", p.PID, q.loc))
}

// Len returns the number of processes in the queue.
func (q *ProcessQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents for iteration, front first.
// The returned slice is the queue's internal storage -- callers may scan
// it but MUST NOT append to or reslice it; detach members via Remove.
func (q *ProcessQueue) Items() []*Process {
	return q.queue
}

func (q *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(fmt.Sprint(p.PID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
