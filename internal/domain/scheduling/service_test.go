package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/auth"
)

type userDirStub struct {
	users map[string]*identity.User
}

func (d *userDirStub) GetUser(_ context.Context, id string) (*identity.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, identity.ErrNotFound
	}
	return u, nil
}

func testService(t *testing.T, now time.Time, appointments ...*Appointment) *Service {
	t.Helper()
	repo := NewAppointmentRepoMem()
	for _, a := range appointments {
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}
	dir := &userDirStub{users: map[string]*identity.User{
		"patient-001": {ID: "patient-001", Role: identity.RolePatient},
		"doctor-001":  {ID: "doctor-001", Role: identity.RoleDoctor},
	}}
	svc := NewService(repo, dir)
	svc.now = func() time.Time { return now }
	return svc
}

func iso(t time.Time) string { return t.Format(time.RFC3339) }

func TestAppointmentsRoleScoping(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "a1", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now), Status: StatusScheduled},
		&Appointment{ID: "a2", PatientID: "patient-002", DoctorID: "doctor-001", DateTime: iso(now), Status: StatusScheduled},
		&Appointment{ID: "a3", PatientID: "patient-002", DoctorID: "doctor-002", DateTime: iso(now), Status: StatusScheduled},
	)
	ctx := context.Background()

	got, err := svc.Appointments(ctx, auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("patient scope = %v, want [a1]", ids(got))
	}

	got, _ = svc.Appointments(ctx, auth.Viewer{UserID: "doctor-001", Role: "doctor"})
	if len(got) != 2 {
		t.Errorf("doctor scope = %v, want a1 and a2", ids(got))
	}

	got, _ = svc.Appointments(ctx, auth.Viewer{UserID: "admin-001", Role: "admin"})
	if len(got) != 3 {
		t.Errorf("admin scope = %v, want all three", ids(got))
	}
}

func TestUpcomingExcludesPastAndCancelled(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "past", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(-24 * time.Hour)), Status: StatusCompleted},
		&Appointment{ID: "soon", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(2 * time.Hour)), Status: StatusScheduled},
		&Appointment{ID: "later", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(48 * time.Hour)), Status: StatusConfirmed},
		&Appointment{ID: "cancelled", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(24 * time.Hour)), Status: StatusCancelled},
		&Appointment{ID: "garbled", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: "not-a-date", Status: StatusScheduled},
	)

	got, err := svc.UpcomingAppointments(context.Background(), auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("UpcomingAppointments: %v", err)
	}
	want := []string{"soon", "later"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q (ascending by dateTime)", i, got[i].ID, id)
		}
	}
}

func TestUpcomingIncludesExactNow(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "boundary", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now), Status: StatusScheduled},
	)
	got, err := svc.UpcomingAppointments(context.Background(), auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("UpcomingAppointments: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("appointment exactly at now should be upcoming, got %v", ids(got))
	}
}

func TestVirtualKeepsAllStatuses(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "v1", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(-time.Hour)), Type: TypeVirtual, Status: StatusCompleted},
		&Appointment{ID: "v2", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(time.Hour)), Type: TypeVirtual, Status: StatusCancelled},
		&Appointment{ID: "p1", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now.Add(time.Hour)), Type: TypeInPerson, Status: StatusScheduled},
	)
	got, err := svc.VirtualAppointments(context.Background(), auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("VirtualAppointments: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("virtual list = %v, want v1 and v2", ids(got))
	}
}

func TestDanglingDoctorOmitted(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "a1", PatientID: "patient-001", DoctorID: "doctor-gone", DateTime: iso(now), Status: StatusScheduled},
	)
	got, err := svc.Appointments(context.Background(), auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d appointments, want 1", len(got))
	}
	if got[0].Doctor != nil {
		t.Error("dangling doctor reference should leave Doctor nil")
	}
	if got[0].Patient == nil || got[0].Patient.ID != "patient-001" {
		t.Error("resolvable patient reference should be joined")
	}
}

func TestListedAppointmentsAreDetachedCopies(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "a1", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now), Status: StatusScheduled, Type: TypeInPerson},
	)
	ctx := context.Background()

	got, err := svc.Appointments(ctx, auth.Viewer{UserID: "admin-001", Role: "admin"})
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	got[0].Status = StatusCancelled

	a, err := svc.appointments.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Errorf("stored status = %q, mutating a listed appointment must not touch the store", a.Status)
	}
}

func TestCancelIdempotent(t *testing.T) {
	now := time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC)
	svc := testService(t, now,
		&Appointment{ID: "a1", PatientID: "patient-001", DoctorID: "doctor-001", DateTime: iso(now), Status: StatusScheduled},
	)
	ctx := context.Background()

	a, err := svc.Cancel(ctx, "a1")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if a.Status != StatusCancelled {
		t.Errorf("status = %q, want cancelled", a.Status)
	}

	a, err = svc.Cancel(ctx, "a1")
	if err != nil {
		t.Fatalf("second Cancel: %v", err)
	}
	if a.Status != StatusCancelled {
		t.Errorf("second cancel status = %q, want cancelled", a.Status)
	}

	if _, err := svc.Cancel(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cancel missing: err = %v, want ErrNotFound", err)
	}
}

func ids(list []*AppointmentWithDetails) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}
