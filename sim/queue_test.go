package sim

import (
	"testing"
)

func TestProcessQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with processes [1, 2, 3]
	q := NewProcessQueue(LocReadyQueue)
	p1, p2, p3 := newProc(1, 1, 0, 0), newProc(2, 1, 0, 0), newProc(3, 1, 0, 0)
	q.PushBack(p1)
	q.PushBack(p2)
	q.PushBack(p3)

	// WHEN all are popped
	got := []*Process{q.PopFront(), q.PopFront(), q.PopFront()}

	// THEN they come out in push order and end up detached
	want := []*Process{p1, p2, p3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PopFront[%d]: got pid %d, want %d", i, got[i].PID, want[i].PID)
		}
		if got[i].Location != LocNone {
			t.Errorf("popped process %d still tagged %s", got[i].PID, got[i].Location)
		}
	}
	if q.PopFront() != nil {
		t.Error("PopFront on empty queue: want nil")
	}
}

func TestProcessQueue_PushBack_TagsLocation(t *testing.T) {
	q := NewProcessQueue(LocForkQueue)
	p := newProc(7, 1, 0, 0)

	q.PushBack(p)

	if p.Location != LocForkQueue {
		t.Errorf("Location: got %s, want %s", p.Location, LocForkQueue)
	}
}

func TestProcessQueue_PushFront_InsertsAtFront(t *testing.T) {
	// GIVEN a queue with processes [1, 2]
	q := NewProcessQueue(LocReadyQueue)
	q.PushBack(newProc(1, 1, 0, 0))
	q.PushBack(newProc(2, 1, 0, 0))

	// WHEN PushFront(3) is called
	q.PushFront(newProc(3, 1, 0, 0))

	// THEN the queue order is [3, 1, 2]
	wantPIDs := []int{3, 1, 2}
	for i, p := range q.Items() {
		if p.PID != wantPIDs[i] {
			t.Errorf("order[%d]: got pid %d, want %d", i, p.PID, wantPIDs[i])
		}
	}
}

func TestProcessQueue_Remove_Middle(t *testing.T) {
	// GIVEN a queue with processes [1, 2, 3]
	q := NewProcessQueue(LocWaitQueue)
	p1, p2, p3 := newProc(1, 1, 0, 0), newProc(2, 1, 0, 0), newProc(3, 1, 0, 0)
	q.PushBack(p1)
	q.PushBack(p2)
	q.PushBack(p3)

	// WHEN the middle member is removed
	q.Remove(p2)

	// THEN order is preserved and the member is detached
	if q.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", q.Len())
	}
	if q.Items()[0] != p1 || q.Items()[1] != p3 {
		t.Errorf("order after Remove: got [%d %d], want [1 3]", q.Items()[0].PID, q.Items()[1].PID)
	}
	if p2.Location != LocNone {
		t.Errorf("removed process tagged %s, want %s", p2.Location, LocNone)
	}
}

func TestProcessQueue_PushBack_LinkedProcess_Panics(t *testing.T) {
	ready := NewProcessQueue(LocReadyQueue)
	wait := NewProcessQueue(LocWaitQueue)
	p := newProc(1, 1, 0, 0)
	ready.PushBack(p)

	defer func() {
		if recover() == nil {
			t.Error("PushBack of an already-linked process did not panic")
		}
	}()
	wait.PushBack(p)
}

func TestProcessQueue_Remove_NonMember_Panics(t *testing.T) {
	q := NewProcessQueue(LocReadyQueue)
	q.PushBack(newProc(1, 1, 0, 0))

	defer func() {
		if recover() == nil {
			t.Error("Remove of a non-member did not panic")
		}
	}()
	q.Remove(newProc(2, 1, 0, 0))
}

func TestProcessQueue_String(t *testing.T) {
	q := NewProcessQueue(LocReadyQueue)
	q.PushBack(newProc(4, 1, 0, 0))
	q.PushBack(newProc(9, 1, 0, 0))

	if got, want := q.String(), "[4 9]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
