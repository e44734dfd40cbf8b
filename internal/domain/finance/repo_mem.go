package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// BillingRepoMem keeps billing records in a mutex-guarded map. Records are
// copied on the way in and out, so callers never hold memory the store also
// writes; mutations only land through Update.
type BillingRepoMem struct {
	mu       sync.RWMutex
	billings map[string]*BillingRecord
}

func NewBillingRepoMem() *BillingRepoMem {
	return &BillingRepoMem{billings: make(map[string]*BillingRecord)}
}

func (r *BillingRepoMem) Create(_ context.Context, b *BillingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	c := *b
	r.billings[b.ID] = &c
	return nil
}

func (r *BillingRepoMem) GetByID(_ context.Context, id string) (*BillingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.billings[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *b
	return &c, nil
}

func (r *BillingRepoMem) Update(_ context.Context, b *BillingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.billings[b.ID]; !ok {
		return ErrNotFound
	}
	c := *b
	r.billings[b.ID] = &c
	return nil
}

func (r *BillingRepoMem) ListByPatient(_ context.Context, patientID string) ([]*BillingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*BillingRecord, 0)
	for _, b := range r.billings {
		if b.PatientID == patientID {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

type InsuranceRepoMem struct {
	mu        sync.RWMutex
	providers map[string]*InsuranceProvider
}

func NewInsuranceRepoMem() *InsuranceRepoMem {
	return &InsuranceRepoMem{providers: make(map[string]*InsuranceProvider)}
}

func (r *InsuranceRepoMem) Create(_ context.Context, p *InsuranceProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	c := *p
	r.providers[p.ID] = &c
	return nil
}

func (r *InsuranceRepoMem) List(_ context.Context) ([]*InsuranceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*InsuranceProvider, 0, len(r.providers))
	for _, p := range r.providers {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

type PaymentRepoMem struct {
	mu       sync.RWMutex
	payments map[string]*Payment
}

func NewPaymentRepoMem() *PaymentRepoMem {
	return &PaymentRepoMem{payments: make(map[string]*Payment)}
}

func (r *PaymentRepoMem) Create(_ context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	c := *p
	r.payments[p.ID] = &c
	return nil
}

func (r *PaymentRepoMem) List(_ context.Context) ([]*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Payment, 0, len(r.payments))
	for _, p := range r.payments {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}
