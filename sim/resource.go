package sim

// DefaultNumResources is the size of the resource table when the policy
// bundle does not override it.
const DefaultNumResources = 16

// Resource is one slot of the fixed-size resource table. Ownership is
// exclusive: at most one process owns a resource at any tick. Processes
// blocked on the resource sit in WaitQueue in the order they blocked;
// the wake order is up to the active policy's Release.
type Resource struct {
	ID        int
	Owner     *Process
	WaitQueue *ProcessQueue
}

func newResourceTable(n int) []*Resource {
	table := make([]*Resource, n)
	for i := range table {
		table[i] = &Resource{
			ID:        i,
			WaitQueue: NewProcessQueue(LocWaitQueue),
		}
	}
	return table
}
