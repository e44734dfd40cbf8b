package hr

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// The HR stores below keep their records in mutex-guarded maps. Records are
// copied on the way in and out, so callers never hold memory the store also
// writes; mutations only land through Update.

type EmployeeRepoMem struct {
	mu        sync.RWMutex
	employees map[string]*EmployeeRecord
}

func NewEmployeeRepoMem() *EmployeeRepoMem {
	return &EmployeeRepoMem{employees: make(map[string]*EmployeeRecord)}
}

func (r *EmployeeRepoMem) Create(_ context.Context, e *EmployeeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	c := *e
	r.employees[e.ID] = &c
	return nil
}

func (r *EmployeeRepoMem) GetByID(_ context.Context, id string) (*EmployeeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *e
	return &c, nil
}

func (r *EmployeeRepoMem) Update(_ context.Context, e *EmployeeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return ErrNotFound
	}
	c := *e
	r.employees[e.ID] = &c
	return nil
}

func (r *EmployeeRepoMem) List(_ context.Context) ([]*EmployeeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*EmployeeRecord, 0, len(r.employees))
	for _, e := range r.employees {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

type AttendanceRepoMem struct {
	mu      sync.RWMutex
	records map[string]*AttendanceRecord
}

func NewAttendanceRepoMem() *AttendanceRepoMem {
	return &AttendanceRepoMem{records: make(map[string]*AttendanceRecord)}
}

func (r *AttendanceRepoMem) Create(_ context.Context, a *AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	c := *a
	r.records[a.ID] = &c
	return nil
}

func (r *AttendanceRepoMem) List(_ context.Context) ([]*AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*AttendanceRecord, 0, len(r.records))
	for _, a := range r.records {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

type LeaveRepoMem struct {
	mu     sync.RWMutex
	leaves map[string]*LeaveRequest
}

func NewLeaveRepoMem() *LeaveRepoMem {
	return &LeaveRepoMem{leaves: make(map[string]*LeaveRequest)}
}

func (r *LeaveRepoMem) Create(_ context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	c := *l
	r.leaves[l.ID] = &c
	return nil
}

func (r *LeaveRepoMem) GetByID(_ context.Context, id string) (*LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.leaves[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *l
	return &c, nil
}

func (r *LeaveRepoMem) Update(_ context.Context, l *LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leaves[l.ID]; !ok {
		return ErrNotFound
	}
	c := *l
	r.leaves[l.ID] = &c
	return nil
}

func (r *LeaveRepoMem) List(_ context.Context) ([]*LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*LeaveRequest, 0, len(r.leaves))
	for _, l := range r.leaves {
		c := *l
		out = append(out, &c)
	}
	return out, nil
}

type PayrollRepoMem struct {
	mu      sync.RWMutex
	records map[string]*PayrollRecord
}

func NewPayrollRepoMem() *PayrollRepoMem {
	return &PayrollRepoMem{records: make(map[string]*PayrollRecord)}
}

func (r *PayrollRepoMem) Create(_ context.Context, p *PayrollRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	c := *p
	r.records[p.ID] = &c
	return nil
}

func (r *PayrollRepoMem) List(_ context.Context) ([]*PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*PayrollRecord, 0, len(r.records))
	for _, p := range r.records {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

type ReviewRepoMem struct {
	mu      sync.RWMutex
	reviews map[string]*PerformanceReview
}

func NewReviewRepoMem() *ReviewRepoMem {
	return &ReviewRepoMem{reviews: make(map[string]*PerformanceReview)}
}

func (r *ReviewRepoMem) Create(_ context.Context, pr *PerformanceReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pr.ID == "" {
		pr.ID = uuid.NewString()
	}
	c := *pr
	r.reviews[pr.ID] = &c
	return nil
}

func (r *ReviewRepoMem) List(_ context.Context) ([]*PerformanceReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*PerformanceReview, 0, len(r.reviews))
	for _, pr := range r.reviews {
		c := *pr
		out = append(out, &c)
	}
	return out, nil
}

type ShiftRepoMem struct {
	mu     sync.RWMutex
	shifts map[string]*ShiftSchedule
}

func NewShiftRepoMem() *ShiftRepoMem {
	return &ShiftRepoMem{shifts: make(map[string]*ShiftSchedule)}
}

func (r *ShiftRepoMem) Create(_ context.Context, s *ShiftSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	c := *s
	r.shifts[s.ID] = &c
	return nil
}

func (r *ShiftRepoMem) List(_ context.Context) ([]*ShiftSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ShiftSchedule, 0, len(r.shifts))
	for _, s := range r.shifts {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

type CertificationRepoMem struct {
	mu    sync.RWMutex
	certs map[string]*Certification
}

func NewCertificationRepoMem() *CertificationRepoMem {
	return &CertificationRepoMem{certs: make(map[string]*Certification)}
}

func (r *CertificationRepoMem) Create(_ context.Context, c *Certification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	cc := *c
	r.certs[c.ID] = &cc
	return nil
}

func (r *CertificationRepoMem) List(_ context.Context) ([]*Certification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Certification, 0, len(r.certs))
	for _, c := range r.certs {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

type AssetRepoMem struct {
	mu     sync.RWMutex
	assets map[string]*AssetAllocation
}

func NewAssetRepoMem() *AssetRepoMem {
	return &AssetRepoMem{assets: make(map[string]*AssetAllocation)}
}

func (r *AssetRepoMem) Create(_ context.Context, a *AssetAllocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	c := *a
	r.assets[a.ID] = &c
	return nil
}

func (r *AssetRepoMem) List(_ context.Context) ([]*AssetAllocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*AssetAllocation, 0, len(r.assets))
	for _, a := range r.assets {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}
