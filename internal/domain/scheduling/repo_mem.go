package scheduling

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// AppointmentRepoMem keeps appointments in a mutex-guarded map. Records are
// copied on the way in and out, so callers never hold memory the store also
// writes; mutations only land through Update.
type AppointmentRepoMem struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
}

func NewAppointmentRepoMem() *AppointmentRepoMem {
	return &AppointmentRepoMem{appointments: make(map[string]*Appointment)}
}

func (r *AppointmentRepoMem) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	c := *a
	r.appointments[a.ID] = &c
	return nil
}

func (r *AppointmentRepoMem) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *a
	return &c, nil
}

func (r *AppointmentRepoMem) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[a.ID]; !ok {
		return ErrNotFound
	}
	c := *a
	r.appointments[a.ID] = &c
	return nil
}

func (r *AppointmentRepoMem) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}
