package world

import (
	"context"
	"sync"
)

// UploadQueue hands generated chunk meshes from the scheduler goroutine
// to the render thread. It is a bounded FIFO: a full queue blocks the
// producer until the consumer drains or the context is cancelled.
type UploadQueue struct {
	ch chan *PendingChunkMesh
}

// NewUploadQueue creates a queue with the given capacity.
func NewUploadQueue(capacity int) *UploadQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &UploadQueue{ch: make(chan *PendingChunkMesh, capacity)}
}

// Push enqueues a pending mesh, blocking while the queue is full.
// Ownership of pm transfers to the consumer on success.
func (q *UploadQueue) Push(ctx context.Context, pm *PendingChunkMesh) error {
	select {
	case q.ch <- pm:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPop dequeues one pending mesh without blocking.
func (q *UploadQueue) TryPop() (*PendingChunkMesh, bool) {
	select {
	case pm := <-q.ch:
		return pm, true
	default:
		return nil, false
	}
}

// Len returns the number of queued entries.
func (q *UploadQueue) Len() int {
	return len(q.ch)
}

// uploadFailures carries coords whose GPU upload failed from the render
// thread back to the scheduler, which releases them for regeneration.
type uploadFailures struct {
	mu     sync.Mutex
	coords []ChunkCoord
}

func (f *uploadFailures) note(coord ChunkCoord) {
	f.mu.Lock()
	f.coords = append(f.coords, coord)
	f.mu.Unlock()
}

// take returns the recorded coords and clears the set.
func (f *uploadFailures) take() []ChunkCoord {
	f.mu.Lock()
	defer f.mu.Unlock()
	coords := f.coords
	f.coords = nil
	return coords
}
