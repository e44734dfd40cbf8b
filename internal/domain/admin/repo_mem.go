package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// DepartmentRepoMem keeps departments in a mutex-guarded map. Records are
// copied on the way in and out, so callers never hold memory the store also
// writes.
type DepartmentRepoMem struct {
	mu          sync.RWMutex
	departments map[string]*Department
}

func NewDepartmentRepoMem() *DepartmentRepoMem {
	return &DepartmentRepoMem{departments: make(map[string]*Department)}
}

func (r *DepartmentRepoMem) Create(_ context.Context, d *Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	c := *d
	r.departments[d.ID] = &c
	return nil
}

func (r *DepartmentRepoMem) List(_ context.Context) ([]*Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Department, 0, len(r.departments))
	for _, d := range r.departments {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}
