package medication

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// PrescriptionRepoMem keeps prescriptions in a mutex-guarded map. Records
// are copied on the way in and out, so callers never hold memory the store
// also writes.
type PrescriptionRepoMem struct {
	mu            sync.RWMutex
	prescriptions map[string]*Prescription
}

func NewPrescriptionRepoMem() *PrescriptionRepoMem {
	return &PrescriptionRepoMem{prescriptions: make(map[string]*Prescription)}
}

func (r *PrescriptionRepoMem) Create(_ context.Context, p *Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	c := *p
	r.prescriptions[p.ID] = &c
	return nil
}

func (r *PrescriptionRepoMem) GetByID(_ context.Context, id string) (*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prescriptions[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *PrescriptionRepoMem) List(_ context.Context) ([]*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Prescription, 0, len(r.prescriptions))
	for _, p := range r.prescriptions {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}
