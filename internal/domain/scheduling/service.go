package scheduling

import (
	"context"
	"sort"
	"time"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/auth"
	"github.com/neudebri/hms/internal/platform/dates"
)

// UserDirectory resolves the weak patient/doctor references on an
// appointment. Satisfied by the identity service.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*identity.User, error)
}

type Service struct {
	appointments AppointmentRepository
	users        UserDirectory
	now          func() time.Time
}

func NewService(appointments AppointmentRepository, users UserDirectory) *Service {
	return &Service{appointments: appointments, users: users, now: time.Now}
}

// Appointments lists what the viewer may see, with patient and doctor
// joined in. Dangling references leave the embedded field nil.
func (s *Service) Appointments(ctx context.Context, v auth.Viewer) ([]*AppointmentWithDetails, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AppointmentWithDetails, 0, len(all))
	for _, a := range all {
		if !v.Allows(auth.Owned{PatientID: a.PatientID, DoctorID: a.DoctorID}) {
			continue
		}
		out = append(out, s.withDetails(ctx, a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpcomingAppointments keeps only appointments at or after now that are
// not cancelled, sorted soonest first. Unparseable dates are excluded.
func (s *Service) UpcomingAppointments(ctx context.Context, v auth.Viewer) ([]*AppointmentWithDetails, error) {
	all, err := s.Appointments(ctx, v)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]*AppointmentWithDetails, 0, len(all))
	for _, a := range all {
		t, ok := dates.Parse(a.DateTime)
		if !ok || t.Before(now) || a.Status == StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return dates.Before(out[i].DateTime, out[j].DateTime)
	})
	return out, nil
}

// VirtualAppointments keeps virtual appointments regardless of status or
// date, so completed and cancelled sessions stay in the history view.
func (s *Service) VirtualAppointments(ctx context.Context, v auth.Viewer) ([]*AppointmentWithDetails, error) {
	all, err := s.Appointments(ctx, v)
	if err != nil {
		return nil, err
	}
	out := make([]*AppointmentWithDetails, 0, len(all))
	for _, a := range all {
		if a.Type == TypeVirtual {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) (*Appointment, error) {
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = status
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel is idempotent: cancelling a cancelled appointment leaves it
// cancelled.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	return s.UpdateStatus(ctx, id, StatusCancelled)
}

func (s *Service) withDetails(ctx context.Context, a *Appointment) *AppointmentWithDetails {
	d := &AppointmentWithDetails{Appointment: *a}
	if u, err := s.users.GetUser(ctx, a.PatientID); err == nil {
		d.Patient = u
	}
	if u, err := s.users.GetUser(ctx, a.DoctorID); err == nil {
		d.Doctor = u
	}
	return d
}
