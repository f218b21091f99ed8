package mining

import (
	"container/heap"
	"mining_backend/internal/model"
	"time"
)

type actionKind int

const (
	actionEvent actionKind = iota
	actionSpinEnd
	actionWatchdog
)

// scheduled Отложенная мутация раунда
type scheduled struct {
	at         time.Time
	seq        uint64 // Порядок постановки, разрешает равное время
	generation uint64
	spinID     uint64
	kind       actionKind
	event      model.SpinEvent
}

// eventQueue Мин-куча по (at, seq)
type eventQueue []*scheduled

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(*scheduled))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

func (q *eventQueue) push(s *scheduled) {
	heap.Push(q, s)
}

func (q *eventQueue) peek() *scheduled {
	if len(*q) == 0 {
		return nil
	}
	return (*q)[0]
}

func (q *eventQueue) pop() *scheduled {
	return heap.Pop(q).(*scheduled)
}

func (q *eventQueue) clear() {
	*q = nil
}
