package world

import (
	"context"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/VxTi/voxel-game/internal/engine/terrain"
	"github.com/VxTi/voxel-game/internal/logger"
	"github.com/VxTi/voxel-game/pkg/math"
)

// ObservationFunc supplies the point terrain generation centers on,
// usually the camera position. Returning nil means no point is available
// yet; the scheduler waits for the next cycle.
type ObservationFunc func() *math.Vec3

// scheduler generates chunk meshes around the observation point on a
// background goroutine and feeds them to the upload queue.
type scheduler struct {
	cfg      Config
	hf       *terrain.HeightField
	store    *ChunkStore
	queue    *UploadQueue
	observe  ObservationFunc
	objects  func() int
	failures *uploadFailures

	// pending tracks coords that are queued but not yet stored, so a
	// sweep does not enqueue the same chunk twice. Only the scheduler
	// goroutine touches it.
	pending map[ChunkCoord]struct{}
}

func newScheduler(cfg Config, hf *terrain.HeightField, store *ChunkStore, queue *UploadQueue, observe ObservationFunc, objects func() int, failures *uploadFailures) *scheduler {
	return &scheduler{
		cfg:      cfg,
		hf:       hf,
		store:    store,
		queue:    queue,
		observe:  observe,
		objects:  objects,
		failures: failures,
		pending:  make(map[ChunkCoord]struct{}),
	}
}

// run loops until the store is full or the context is cancelled.
func (s *scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.GenerationInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("world generation cancelled")
			return
		case <-ticker.C:
		}

		if s.store.Len() >= s.cfg.MaxChunks {
			logger.Info("world generation finished",
				zap.Int("chunks", s.store.Len()),
			)
			return
		}

		if err := s.sweep(ctx); err != nil {
			logger.Debug("world generation cancelled mid-sweep")
			return
		}
	}
}

// sweep walks the square generation ring around the observation point
// and enqueues every chunk that is neither stored nor pending.
func (s *scheduler) sweep(ctx context.Context) error {
	point := s.observe()
	if point == nil {
		logger.Warn("no observation point provided, skipping world generation")
		return nil
	}

	if s.objects() > s.cfg.MaxWorldObjects {
		return nil
	}

	// Coords drained into the store since the last sweep are no longer
	// in flight, even when the observer has moved to another ring.
	// Failed uploads free their slot so the walk below can retry them.
	for _, coord := range s.failures.take() {
		delete(s.pending, coord)
	}
	for coord := range s.pending {
		if s.store.Contains(coord) {
			delete(s.pending, coord)
		}
	}

	size := s.cfg.ChunkSize
	px := floorMultiple(int(gomath.Floor(float64(point.X))), size)
	pz := floorMultiple(int(gomath.Floor(float64(point.Z))), size)

	for x := -s.cfg.GenerationRadius; x < s.cfg.GenerationRadius; x++ {
		for z := -s.cfg.GenerationRadius; z < s.cfg.GenerationRadius; z++ {
			coord := ChunkCoord{X: px + x*size, Z: pz + z*size}

			if s.store.Contains(coord) {
				delete(s.pending, coord)
				continue
			}
			if _, queued := s.pending[coord]; queued {
				continue
			}
			if s.store.Len()+len(s.pending) >= s.cfg.MaxChunks {
				return nil
			}

			data := terrain.BuildChunkMesh(s.hf, coord.X, coord.Z, size)
			pm := &PendingChunkMesh{Coord: coord, Data: data}
			if err := s.queue.Push(ctx, pm); err != nil {
				return err
			}
			s.pending[coord] = struct{}{}

			logger.Debug("chunk mesh generated",
				zap.Int("x", coord.X),
				zap.Int("z", coord.Z),
				zap.Int("queued", s.queue.Len()),
			)
		}
	}
	return nil
}

// floorMultiple rounds v down to the nearest lower multiple of size,
// also for negative values.
func floorMultiple(v, size int) int {
	return floorDiv(v, size) * size
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
