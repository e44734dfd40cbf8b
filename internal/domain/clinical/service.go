package clinical

import (
	"context"
	"sort"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/dates"
)

type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
}

type Service struct {
	records HealthRecordRepository
	vitals  VitalSignsRepository
	labs    LabResultRepository
	wounds  WoundRecordRepository
	users   UserDirectory
}

func NewService(records HealthRecordRepository, vitals VitalSignsRepository, labs LabResultRepository, wounds WoundRecordRepository, users UserDirectory) *Service {
	return &Service{records: records, vitals: vitals, labs: labs, wounds: wounds, users: users}
}

// HealthRecords returns a patient's history, newest first.
func (s *Service) HealthRecords(ctx context.Context, patientID string) ([]*HealthRecord, error) {
	out, err := s.records.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].Date, out[j].Date) })
	return out, nil
}

func (s *Service) CreateHealthRecord(ctx context.Context, r *HealthRecord) (*HealthRecord, error) {
	if err := s.records.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) VitalSigns(ctx context.Context, patientID string) ([]*VitalSigns, error) {
	out, err := s.vitals.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].RecordedAt, out[j].RecordedAt) })
	return out, nil
}

func (s *Service) CreateVitalSigns(ctx context.Context, v *VitalSigns) (*VitalSigns, error) {
	if err := s.vitals.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// LabResults returns a patient's lab work newest order first, each joined
// with the ordering clinician when that reference resolves.
func (s *Service) LabResults(ctx context.Context, patientID string) ([]*LabResultWithDoctor, error) {
	results, err := s.labs.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return dates.After(results[i].OrderedDate, results[j].OrderedDate) })
	out := make([]*LabResultWithDoctor, 0, len(results))
	for _, r := range results {
		d := &LabResultWithDoctor{LabResult: *r}
		if r.OrderedBy != nil {
			if u, err := s.users.GetUser(ctx, *r.OrderedBy); err == nil {
				d.OrderedByDoctor = u
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) CreateLabResult(ctx context.Context, r *LabResult) (*LabResult, error) {
	if err := s.labs.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) WoundRecords(ctx context.Context, patientID string) ([]*WoundRecord, error) {
	out, err := s.wounds.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].Date, out[j].Date) })
	return out, nil
}

func (s *Service) CreateWoundRecord(ctx context.Context, w *WoundRecord) (*WoundRecord, error) {
	if err := s.wounds.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
