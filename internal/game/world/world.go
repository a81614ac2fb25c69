package world

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/VxTi/voxel-game/internal/engine/terrain"
	"github.com/VxTi/voxel-game/internal/logger"
	"github.com/VxTi/voxel-game/pkg/math"
)

// Config holds the world generation limits and pacing.
type Config struct {
	ChunkSize          int
	GenerationRadius   int
	MaxChunks          int
	MaxWorldObjects    int
	QueueCapacity      int
	GenerationInterval time.Duration
}

// World owns the terrain chunks and the dynamic objects placed in them.
// Chunk meshes are generated on a background goroutine; the render loop
// drains at most one finished mesh per frame so uploads never stall it.
type World struct {
	cfg      Config
	hf       *terrain.HeightField
	store    *ChunkStore
	queue    *UploadQueue
	uploader MeshUploader
	failures uploadFailures

	objMu     sync.RWMutex
	objects   []Updatable
	drawables []Drawable

	genMu      sync.Mutex
	genStarted bool
	genCancel  context.CancelFunc
	genWG      sync.WaitGroup
}

func New(cfg Config, hf *terrain.HeightField, uploader MeshUploader) *World {
	return &World{
		cfg:      cfg,
		hf:       hf,
		store:    NewChunkStore(),
		queue:    NewUploadQueue(cfg.QueueCapacity),
		uploader: uploader,
	}
}

// HeightField exposes the terrain sampler, e.g. for placing objects on
// the ground.
func (w *World) HeightField() *terrain.HeightField { return w.hf }

// StartGeneration launches the background chunk generator centered on
// the points observe yields. Calling it again is a no-op.
func (w *World) StartGeneration(observe ObservationFunc) {
	w.genMu.Lock()
	defer w.genMu.Unlock()
	if w.genStarted {
		return
	}
	w.genStarted = true

	ctx, cancel := context.WithCancel(context.Background())
	w.genCancel = cancel

	sched := newScheduler(w.cfg, w.hf, w.store, w.queue, observe, w.ObjectCount, &w.failures)
	w.genWG.Add(1)
	go func() {
		defer w.genWG.Done()
		sched.run(ctx)
	}()

	logger.Info("world generation started",
		zap.Int("radius", w.cfg.GenerationRadius),
		zap.Int("max_chunks", w.cfg.MaxChunks),
	)
}

// AddObject registers an object for per-frame updates.
func (w *World) AddObject(obj Updatable) {
	w.objMu.Lock()
	w.objects = append(w.objects, obj)
	w.objMu.Unlock()
}

// AddDrawable registers an object drawn during Render.
func (w *World) AddDrawable(d Drawable) {
	w.objMu.Lock()
	w.drawables = append(w.drawables, d)
	w.objMu.Unlock()
}

func (w *World) ObjectCount() int {
	w.objMu.RLock()
	defer w.objMu.RUnlock()
	return len(w.objects)
}

func (w *World) ChunkCount() int { return w.store.Len() }

// QueuedMeshes reports how many generated meshes wait for upload.
func (w *World) QueuedMeshes() int { return w.queue.Len() }

// Update advances all registered world objects.
func (w *World) Update(dt float64) {
	w.objMu.RLock()
	objects := w.objects
	w.objMu.RUnlock()

	for _, obj := range objects {
		obj.Update(dt)
	}
}

// Render draws every chunk and drawable that intersects the view
// frustum, then integrates at most one pending chunk mesh. A nil
// frustum disables culling.
func (w *World) Render(dt float64, frustum *math.Frustum) {
	w.store.Each(func(c *Chunk) {
		if frustum != nil && !frustum.IntersectsSphere(c.BoundsCenter(), c.BoundsRadius()) {
			return
		}
		c.Draw(dt)
	})

	w.objMu.RLock()
	drawables := w.drawables
	w.objMu.RUnlock()

	for _, d := range drawables {
		if frustum != nil && !frustum.ContainsPoint(d.Transform().Position) {
			continue
		}
		d.Draw(dt)
	}

	if pm, ok := w.queue.TryPop(); ok {
		w.finalizeChunk(pm)
	}
}

// finalizeChunk uploads a generated mesh and stores the resulting
// chunk. Runs on the render thread since uploads touch the GL context.
// A failed upload is reported back so the scheduler can regenerate the
// chunk.
func (w *World) finalizeChunk(pm *PendingChunkMesh) {
	mesh, err := w.uploader.Upload(pm.Data)
	if err != nil {
		logger.Error("chunk mesh upload failed",
			zap.Int("x", pm.Coord.X),
			zap.Int("z", pm.Coord.Z),
			zap.Error(err),
		)
		w.failures.note(pm.Coord)
		return
	}

	chunk := &Chunk{
		Coord:     pm.Coord,
		Size:      w.cfg.ChunkSize,
		Bounds:    pm.Data.Bounds,
		HeightMap: pm.Data.HeightMap,
		mesh:      mesh,
	}
	if !w.store.Add(chunk) {
		mesh.Delete()
	}
}

// Close stops generation, waits for the generator goroutine, and frees
// every chunk. The GL context must still be current.
func (w *World) Close() {
	w.genMu.Lock()
	if w.genCancel != nil {
		w.genCancel()
	}
	w.genMu.Unlock()
	w.genWG.Wait()

	for {
		if _, ok := w.queue.TryPop(); !ok {
			break
		}
	}

	w.store.Each(func(c *Chunk) { c.destroy() })
	logger.Info("world closed", zap.Int("chunks", w.store.Len()))
}
