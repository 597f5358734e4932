package event

import (
	"context"
	"sync"

	"github.com/Nilismith/hydra/internal/chain/config"
	"github.com/Nilismith/hydra/pkg/workerpool"
)

// Queue assigns each pushed ChainEvent a strictly monotonically increasing
// id, starting at 1, and dispatches it to every subscriber.
// A single writer (ChainSyncHandler) pushes; any number of subscribers may
// be registered before events start flowing.
type Queue struct {
	mu          sync.Mutex
	nextId      uint64
	subscribers []func(ChainEvent)
}

// NewQueue builds an empty event queue. The first pushed event gets id 1.
func NewQueue() *Queue {
	return &Queue{nextId: 1}
}

// Subscribe registers fn to receive every event pushed after this call.
// Safe to call concurrently with Push: both take the queue's lock.
func (q *Queue) Subscribe(fn func(ChainEvent)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.subscribers = append(q.subscribers, fn)
}

// Push assigns ev the next strictly increasing id and fans it out to every
// subscriber concurrently via a bounded worker pool, then returns the
// assigned event.
func (q *Queue) Push(ctx context.Context, ev ChainEvent) ChainEvent {
	q.mu.Lock()
	ev.Id = q.nextId
	q.nextId++
	subs := append([]func(ChainEvent){}, q.subscribers...)
	q.mu.Unlock()

	if len(subs) == 0 {
		return ev
	}

	// Dispatch never fails: a subscriber callback has no error to report,
	// so onCancel is unused and workerpool.Process's error path is dead by
	// construction.
	_ = workerpool.Process(ctx, min(len(subs), config.EventDispatchWorkers), subs,
		func(_ context.Context, fn func(ChainEvent)) error {
			fn(ev)
			return nil
		}, nil)

	return ev
}
