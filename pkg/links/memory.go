package links

import (
	"context"
	"sync"
)

// MemoryRepository keeps links in a map. Data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	links map[string]Link
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{links: make(map[string]Link)}
}

func (m *MemoryRepository) Insert(_ context.Context, link Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.Code]; exists {
		return ErrCodeTaken
	}
	m.links[link.Code] = link
	return nil
}

func (m *MemoryRepository) FindByCode(_ context.Context, code string) (Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[code]
	if !ok {
		return Link{}, ErrNotFound
	}
	return link, nil
}

func (m *MemoryRepository) IncrementVisits(_ context.Context, code string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[code]
	if !ok {
		return 0, ErrNotFound
	}
	link.Visits++
	m.links[code] = link
	return link.Visits, nil
}
