package repository

import (
	"context"
	"fmt"
	"sync"

	"distribution-oos-backend/internal/domains/request/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.ChangeRequest, error)
	Get(ctx context.Context, id string) (*model.ChangeRequest, error)
	Create(ctx context.Context, req model.ChangeRequest) error
	Update(ctx context.Context, req model.ChangeRequest) error
}

type MemoryRepository struct {
	mu       sync.RWMutex
	requests []model.ChangeRequest
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(requests []model.ChangeRequest) *MemoryRepository {
	return &MemoryRepository{requests: requests}
}

func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedRequests())
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.ChangeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ChangeRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*model.ChangeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.ID == id {
			out := req
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrRequestNotFound, id)
}

func (r *MemoryRepository) Create(ctx context.Context, req model.ChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, req model.ChangeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = req
			return nil
		}
	}
	return fmt.Errorf("%w: %s", model.ErrRequestNotFound, req.ID)
}
