package simulation

import (
	"container/heap"

	"github.com/napolitain/idle-empire/internal/models"
)

// raidEntry wraps a raid with its insertion order for stable sorting
type raidEntry struct {
	raid     *models.Raid
	sequence int64
}

// raidHeap implements heap.Interface for a min-heap of raids
type raidHeap []raidEntry

func (h raidHeap) Len() int { return len(h) }

func (h raidHeap) Less(i, j int) bool {
	// Sort by arrival first
	if h[i].raid.ArrivesAt != h[j].raid.ArrivesAt {
		return h[i].raid.ArrivesAt < h[j].raid.ArrivesAt
	}
	// Then by insertion order
	return h[i].sequence < h[j].sequence
}

func (h raidHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *raidHeap) Push(x any) {
	*h = append(*h, x.(raidEntry))
}

func (h *raidHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// RaidQueue is a priority queue of pending raids ordered by (ArrivesAt, insertion order).
// A raid id is accepted once; pushing it again is a no-op.
type RaidQueue struct {
	h        raidHeap
	sequence int64
	seen     map[string]bool
}

// NewRaidQueue creates a new empty raid queue
func NewRaidQueue() *RaidQueue {
	q := &RaidQueue{
		h:    make(raidHeap, 0),
		seen: make(map[string]bool),
	}
	heap.Init(&q.h)
	return q
}

// Push schedules a raid and reports whether it was added
func (q *RaidQueue) Push(r *models.Raid) bool {
	if r.Resolved || q.seen[r.ID] {
		return false
	}
	q.seen[r.ID] = true
	q.sequence++
	heap.Push(&q.h, raidEntry{raid: r, sequence: q.sequence})
	return true
}

// Len returns the number of pending raids
func (q *RaidQueue) Len() int {
	return q.h.Len()
}

// Peek returns the next raid to arrive without removing it
func (q *RaidQueue) Peek() *models.Raid {
	if q.h.Len() == 0 {
		return nil
	}
	return q.h[0].raid
}

// PopArrived removes and returns every raid with ArrivesAt <= now, in arrival order
func (q *RaidQueue) PopArrived(now int64) []*models.Raid {
	var arrived []*models.Raid
	for q.h.Len() > 0 && q.h[0].raid.ArrivesAt <= now {
		arrived = append(arrived, heap.Pop(&q.h).(raidEntry).raid)
	}
	return arrived
}

// Pending returns the queued raids in arrival order without removing them
func (q *RaidQueue) Pending() []*models.Raid {
	cp := make(raidHeap, len(q.h))
	copy(cp, q.h)
	out := make([]*models.Raid, 0, len(cp))
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(raidEntry).raid)
	}
	return out
}
