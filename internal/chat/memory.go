package chat

import (
	"context"
	"sync"
)

// MemoryRepository keeps conversation logs in process memory. This is the
// default backend: state is ephemeral and rebuilt from scratch on restart.
type MemoryRepository struct {
	mu    sync.Mutex
	turns map[string][]Turn
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{turns: make(map[string][]Turn)}
}

func (r *MemoryRepository) Append(ctx context.Context, conversationID string, turn Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns[conversationID] = append(r.turns[conversationID], turn)
	return nil
}

func (r *MemoryRepository) History(ctx context.Context, conversationID string) ([]Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src := r.turns[conversationID]
	out := make([]Turn, len(src))
	copy(out, src)
	return out, nil
}

func (r *MemoryRepository) Clear(ctx context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.turns, conversationID)
	return nil
}

func (r *MemoryRepository) Count(ctx context.Context, conversationID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.turns[conversationID]), nil
}

var _ Repository = (*MemoryRepository)(nil)
