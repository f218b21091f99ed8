package mining

import (
	"sync"
	"time"
)

// Clock Источник времени для очереди событий раунда
type Clock interface {
	Now() time.Time
}

// SystemClock Настенные часы
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock Виртуальные часы, время двигается только через Advance
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock Часы, стоящие на start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance Сдвинуть время вперёд
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
