package clinical

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// The four chart stores below keep their records in mutex-guarded maps.
// Records are copied on the way in and out, so callers never hold memory
// the store also writes.

type HealthRecordRepoMem struct {
	mu      sync.RWMutex
	records map[string]*HealthRecord
}

func NewHealthRecordRepoMem() *HealthRecordRepoMem {
	return &HealthRecordRepoMem{records: make(map[string]*HealthRecord)}
}

func (r *HealthRecordRepoMem) Create(_ context.Context, rec *HealthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	c := *rec
	r.records[rec.ID] = &c
	return nil
}

func (r *HealthRecordRepoMem) ListByPatient(_ context.Context, patientID string) ([]*HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*HealthRecord, 0)
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			c := *rec
			out = append(out, &c)
		}
	}
	return out, nil
}

type VitalSignsRepoMem struct {
	mu     sync.RWMutex
	vitals map[string]*VitalSigns
}

func NewVitalSignsRepoMem() *VitalSignsRepoMem {
	return &VitalSignsRepoMem{vitals: make(map[string]*VitalSigns)}
}

func (r *VitalSignsRepoMem) Create(_ context.Context, v *VitalSigns) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	c := *v
	r.vitals[v.ID] = &c
	return nil
}

func (r *VitalSignsRepoMem) ListByPatient(_ context.Context, patientID string) ([]*VitalSigns, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*VitalSigns, 0)
	for _, v := range r.vitals {
		if v.PatientID == patientID {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

type LabResultRepoMem struct {
	mu      sync.RWMutex
	results map[string]*LabResult
}

func NewLabResultRepoMem() *LabResultRepoMem {
	return &LabResultRepoMem{results: make(map[string]*LabResult)}
}

func (r *LabResultRepoMem) Create(_ context.Context, res *LabResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	c := *res
	r.results[res.ID] = &c
	return nil
}

func (r *LabResultRepoMem) ListByPatient(_ context.Context, patientID string) ([]*LabResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*LabResult, 0)
	for _, res := range r.results {
		if res.PatientID == patientID {
			c := *res
			out = append(out, &c)
		}
	}
	return out, nil
}

type WoundRecordRepoMem struct {
	mu     sync.RWMutex
	wounds map[string]*WoundRecord
}

func NewWoundRecordRepoMem() *WoundRecordRepoMem {
	return &WoundRecordRepoMem{wounds: make(map[string]*WoundRecord)}
}

func (r *WoundRecordRepoMem) Create(_ context.Context, w *WoundRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	c := *w
	r.wounds[w.ID] = &c
	return nil
}

func (r *WoundRecordRepoMem) ListByPatient(_ context.Context, patientID string) ([]*WoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*WoundRecord, 0)
	for _, w := range r.wounds {
		if w.PatientID == patientID {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}
