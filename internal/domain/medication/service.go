package medication

import (
	"context"
	"sort"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/auth"
)

type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
}

type Service struct {
	prescriptions PrescriptionRepository
	users         UserDirectory
}

func NewService(prescriptions PrescriptionRepository, users UserDirectory) *Service {
	return &Service{prescriptions: prescriptions, users: users}
}

// Prescriptions lists what the viewer may see, each joined with the
// prescribing doctor when that reference resolves.
func (s *Service) Prescriptions(ctx context.Context, v auth.Viewer) ([]*PrescriptionWithDoctor, error) {
	all, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PrescriptionWithDoctor, 0, len(all))
	for _, p := range all {
		if !v.Allows(auth.Owned{PatientID: p.PatientID, DoctorID: p.DoctorID}) {
			continue
		}
		d := &PrescriptionWithDoctor{Prescription: *p}
		if u, err := s.users.GetUser(ctx, p.DoctorID); err == nil {
			d.Doctor = u
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RequestRefill acknowledges a refill request. Nothing is decremented or
// queued; the pharmacy workflow lives outside this system.
func (s *Service) RequestRefill(_ context.Context, _ string) string {
	return "Refill request submitted successfully"
}
