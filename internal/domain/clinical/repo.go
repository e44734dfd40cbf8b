package clinical

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type HealthRecordRepository interface {
	Create(ctx context.Context, r *HealthRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]*HealthRecord, error)
}

type VitalSignsRepository interface {
	Create(ctx context.Context, v *VitalSigns) error
	ListByPatient(ctx context.Context, patientID string) ([]*VitalSigns, error)
}

type LabResultRepository interface {
	Create(ctx context.Context, r *LabResult) error
	ListByPatient(ctx context.Context, patientID string) ([]*LabResult, error)
}

type WoundRecordRepository interface {
	Create(ctx context.Context, w *WoundRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]*WoundRecord, error)
}
