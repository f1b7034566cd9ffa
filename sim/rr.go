package sim

// DefaultQuantum is the Round-Robin time slice in ticks. The engine
// consults the policy once per tick, so a quantum of one rotates the
// runner to the tail of the ready queue every tick it can.
const DefaultQuantum = 1

// RoundRobinScheduler rotates the CPU through the ready queue in fixed
// time slices. Resources are served first-come-first-served.
type RoundRobinScheduler struct {
	fcfsProtocol

	// Quantum is the slice length in ticks; values below one behave as one.
	Quantum int

	slice int // ticks the current runner has consumed of its slice
}

func (*RoundRobinScheduler) Name() string { return "Round-Robin" }

func (r *RoundRobinScheduler) Schedule(sim *Simulator) *Process {
	quantum := r.Quantum
	if quantum < 1 {
		quantum = 1
	}

	cur := sim.Current

	if cur != nil && cur.Status != StatusWaiting && cur.Age < cur.Lifespan {
		r.slice++
		// The runner keeps the CPU until its slice expires, and past
		// expiry when nobody else is ready.
		if r.slice < quantum || sim.ReadyQueue.Len() == 0 {
			return cur
		}
		next := sim.ReadyQueue.PopFront()
		sim.ReadyQueue.PushBack(cur)
		r.slice = 0
		return next
	}

	r.slice = 0
	return sim.ReadyQueue.PopFront()
}
