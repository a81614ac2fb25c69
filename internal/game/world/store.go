package world

import "sync"

// ChunkStore holds finalized chunks. Chunks are only ever added, never
// removed; the render thread adds while the scheduler checks membership,
// so access is guarded.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
	order  []*Chunk
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[ChunkCoord]*Chunk)}
}

// Contains reports whether a chunk exists at the given coordinate.
func (s *ChunkStore) Contains(coord ChunkCoord) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.chunks[coord]
	return ok
}

// Add inserts a chunk. Adding a coordinate that already exists is a
// no-op; the return value reports whether the chunk was inserted.
func (s *ChunkStore) Add(c *Chunk) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chunks[c.Coord]; ok {
		return false
	}
	s.chunks[c.Coord] = c
	s.order = append(s.order, c)
	return true
}

// Len returns the number of stored chunks.
func (s *ChunkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Each calls fn for every chunk in insertion order.
func (s *ChunkStore) Each(fn func(*Chunk)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.order {
		fn(c)
	}
}
