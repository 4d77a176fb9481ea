package catalog

import (
	"context"

	"novelverse/pkg/models"
)

// Store is a read-only catalog snapshot. Get returns (nil, nil) for an
// unknown id.
type Store interface {
	List(ctx context.Context) ([]models.NovelSummary, error)
	Get(ctx context.Context, id string) (*models.NovelSummary, error)
}

// MemoryStore serves a fixed slice and hands out copies.
type MemoryStore struct {
	novels []models.NovelSummary
}

func NewMemoryStore(novels []models.NovelSummary) *MemoryStore {
	return &MemoryStore{novels: novels}
}

func NewSeedStore() *MemoryStore {
	return NewMemoryStore(Seed())
}

func (s *MemoryStore) List(ctx context.Context) ([]models.NovelSummary, error) {
	out := make([]models.NovelSummary, len(s.novels))
	copy(out, s.novels)
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.NovelSummary, error) {
	for _, n := range s.novels {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, nil
}
