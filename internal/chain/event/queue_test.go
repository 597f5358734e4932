package event

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_AssignsStrictlyMonotonicIds(t *testing.T) {
	q := NewQueue()
	var ids []uint64
	for i := 0; i < 5; i++ {
		ev := q.Push(context.Background(), ChainEvent{Tag: EventTick})
		ids = append(ids, ev.Id)
	}

	for i := 1; i < len(ids); i++ {
		require.Greater(t, ids[i], ids[i-1])
	}
	require.Equal(t, uint64(1), ids[0])
}

func TestQueue_DispatchesToEverySubscriber(t *testing.T) {
	q := NewQueue()
	var mu sync.Mutex
	var received []ChainEvent

	const subscriberCount = 4
	var wg sync.WaitGroup
	wg.Add(subscriberCount)
	for i := 0; i < subscriberCount; i++ {
		q.Subscribe(func(ev ChainEvent) {
			mu.Lock()
			received = append(received, ev)
			mu.Unlock()
			wg.Done()
		})
	}

	q.Push(context.Background(), ChainEvent{Tag: EventTick})
	wg.Wait()

	require.Len(t, received, subscriberCount)
}
