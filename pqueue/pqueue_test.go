package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/rotoplan/pqueue"
	"github.com/stretchr/testify/require"
)

func TestQueue_DequeueReturnsHighestPriorityFirst(t *testing.T) {
	q := pqueue.New()
	q.Enqueue("low", 10)
	q.Enqueue("high", 90)
	q.Enqueue("mid", 50)

	require.Equal(t, "high", q.Dequeue().Value)
	require.Equal(t, "mid", q.Dequeue().Value)
	require.Equal(t, "low", q.Dequeue().Value)
}

func TestQueue_TiesBreakByInsertionOrder(t *testing.T) {
	q := pqueue.New()
	q.Enqueue("first", 42)
	q.Enqueue("second", 42)
	q.Enqueue("third", 42)

	require.Equal(t, "first", q.Dequeue().Value)
	require.Equal(t, "second", q.Dequeue().Value)
	require.Equal(t, "third", q.Dequeue().Value)
}

func TestQueue_DequeueOnEmptyReturnsNil(t *testing.T) {
	q := pqueue.New()
	require.Nil(t, q.Dequeue())
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q := pqueue.New()
	q.Enqueue("only", 1)

	require.Equal(t, "only", q.Peek().Value)
	require.Equal(t, 1, q.Len())
	require.Equal(t, "only", q.Dequeue().Value)
	require.Zero(t, q.Len())
}

func TestQueue_LenTracksPushesAndPops(t *testing.T) {
	q := pqueue.New()
	require.Zero(t, q.Len())

	q.Enqueue("a", 1)
	q.Enqueue("b", 2)
	require.Equal(t, 2, q.Len())

	q.Dequeue()
	require.Equal(t, 1, q.Len())
}

func TestQueue_SupportsDuplicatePushesForLazyDecreaseKey(t *testing.T) {
	q := pqueue.New()
	stale := q.Enqueue("state-x", 50)
	q.Enqueue("state-x", 80)

	require.Equal(t, 2, q.Len(), "pushing a second entry for the same logical state does not replace the earlier one")

	first := q.Dequeue()
	require.Equal(t, uint16(80), first.Priority, "the higher-priority duplicate pops first")

	second := q.Dequeue()
	require.Equal(t, stale.Priority, second.Priority)
}
