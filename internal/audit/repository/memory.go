package repository

import (
	"context"
	"sync"

	"collective-ledger/internal/audit/domain"
)

// MemoryRepository keeps audit logs in process memory. Used when no DATABASE_URL is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []*domain.AuditLog
	byID    map[string]*domain.AuditLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*domain.AuditLog)}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// List returns entries newest first.
func (r *MemoryRepository) List(ctx context.Context, limit, offset int32) ([]*domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := int32(len(r.entries))
	if offset < 0 {
		offset = 0
	}
	if offset >= n || limit <= 0 {
		return nil, nil
	}
	end := offset + limit
	if end > n {
		end = n
	}
	out := make([]*domain.AuditLog, 0, end-offset)
	for i := offset; i < end; i++ {
		cp := *r.entries[n-1-i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	cp := *a
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, &cp)
	r.byID[cp.ID] = &cp
	return nil
}
