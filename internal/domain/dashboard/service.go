package dashboard

import (
	"context"
	"time"

	jnow "github.com/jinzhu/now"

	"github.com/neudebri/hms/internal/domain/clinical"
	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/domain/medication"
	"github.com/neudebri/hms/internal/domain/scheduling"
	"github.com/neudebri/hms/internal/platform/auth"
	"github.com/neudebri/hms/internal/platform/dates"
)

// Stats is the landing-page aggregate, computed against the viewer's own
// slice of the data.
type Stats struct {
	TotalPatients        int `json:"totalPatients"`
	TotalDoctors         int `json:"totalDoctors"`
	AppointmentsToday    int `json:"appointmentsToday"`
	AppointmentsThisWeek int `json:"appointmentsThisWeek"`
	PendingLabResults    int `json:"pendingLabResults"`
	ActivePrescriptions  int `json:"activePrescriptions"`
	UnreadMessages       int `json:"unreadMessages"`
	VirtualCareSessions  int `json:"virtualCareSessions"`
}

type Service struct {
	users         *identity.Service
	appointments  *scheduling.Service
	prescriptions *medication.Service
	charts        *clinical.Service
	unread        UnreadCounter
	now           func() time.Time
}

// UnreadCounter is the slice of the inbox the dashboard needs.
type UnreadCounter interface {
	UnreadCount(ctx context.Context, userID string) (int, error)
}

func NewService(users *identity.Service, appointments *scheduling.Service, prescriptions *medication.Service, charts *clinical.Service, unread UnreadCounter) *Service {
	return &Service{
		users:         users,
		appointments:  appointments,
		prescriptions: prescriptions,
		charts:        charts,
		unread:        unread,
		now:           time.Now,
	}
}

// Stats computes the dashboard numbers. Today is the calendar day the
// server is in; the week runs Sunday through Saturday.
func (s *Service) Stats(ctx context.Context, v auth.Viewer) (*Stats, error) {
	ref := s.now()
	cal := jnow.With(ref)
	startOfToday := cal.BeginningOfDay()
	endOfToday := startOfToday.Add(24 * time.Hour)
	startOfWeek := cal.BeginningOfWeek()
	endOfWeek := startOfWeek.Add(7 * 24 * time.Hour)

	st := &Stats{}

	patients, err := s.users.Patients(ctx)
	if err != nil {
		return nil, err
	}
	st.TotalPatients = len(patients)

	doctors, err := s.users.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	st.TotalDoctors = len(doctors)

	appointments, err := s.appointments.Appointments(ctx, v)
	if err != nil {
		return nil, err
	}
	for _, a := range appointments {
		inToday := dates.Within(a.DateTime, startOfToday, endOfToday)
		inWeek := dates.Within(a.DateTime, startOfWeek, endOfWeek)
		if inToday {
			st.AppointmentsToday++
		}
		if inWeek && a.Status != scheduling.StatusCancelled {
			st.AppointmentsThisWeek++
		}
		if inWeek && a.Type == scheduling.TypeVirtual {
			st.VirtualCareSessions++
		}
	}

	// Pending labs are a patient-only number; other roles see zero rather
	// than a hospital-wide count.
	if v.Role == string(identity.RolePatient) {
		labs, err := s.charts.LabResults(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		for _, l := range labs {
			if l.Status == clinical.LabPending || l.Status == clinical.LabInProgress {
				st.PendingLabResults++
			}
		}
	}

	prescriptions, err := s.prescriptions.Prescriptions(ctx, v)
	if err != nil {
		return nil, err
	}
	for _, p := range prescriptions {
		if p.Status == medication.StatusActive {
			st.ActivePrescriptions++
		}
	}

	unread, err := s.unread.UnreadCount(ctx, v.UserID)
	if err != nil {
		return nil, err
	}
	st.UnreadMessages = unread

	return st, nil
}
