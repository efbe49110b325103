package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu     sync.Mutex
	seen   []uuid.UUID
	forced int
}

func (f *fakeRunner) ProcessJob(_ context.Context, _, documentID uuid.UUID, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, documentID)
	if force {
		f.forced++
	}
	return nil
}

func (f *fakeRunner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

func TestProcessorQueueDrainsAllJobs(t *testing.T) {
	runner := &fakeRunner{}
	q := NewProcessorQueue(runner, nil, WithWorkers(3), WithQueueSize(8))

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, n, runner.count())
}

func TestProcessorQueuePassesForce(t *testing.T) {
	runner := &fakeRunner{}
	q := NewProcessorQueue(runner, nil, WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), DocumentID: uuid.New(), Force: true}))
	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), DocumentID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 2, runner.count())
	assert.Equal(t, 1, runner.forced)
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	runner := &fakeRunner{}
	q := NewProcessorQueue(runner, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// dropped, not panicking on a closed channel
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	assert.Equal(t, 0, runner.count())
}

func TestProcessorQueueShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(&fakeRunner{}, nil, WithWorkers(1))
	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call is a no-op
}
