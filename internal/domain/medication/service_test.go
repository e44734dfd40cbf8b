package medication

import (
	"context"
	"testing"

	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/platform/auth"
)

type userDirStub struct{}

func (userDirStub) GetUser(_ context.Context, id string) (*identity.User, error) {
	if id == "doctor-001" {
		return &identity.User{ID: id, Role: identity.RoleDoctor}, nil
	}
	return nil, identity.ErrNotFound
}

func testService(t *testing.T, prescriptions ...*Prescription) *Service {
	t.Helper()
	repo := NewPrescriptionRepoMem()
	for _, p := range prescriptions {
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("seed prescription: %v", err)
		}
	}
	return NewService(repo, userDirStub{})
}

func TestPrescriptionsRoleScoping(t *testing.T) {
	svc := testService(t,
		&Prescription{ID: "rx1", PatientID: "patient-001", DoctorID: "doctor-001", MedicationName: "Lisinopril", Status: StatusActive},
		&Prescription{ID: "rx2", PatientID: "patient-002", DoctorID: "doctor-001", MedicationName: "Metformin", Status: StatusActive},
		&Prescription{ID: "rx3", PatientID: "patient-002", DoctorID: "doctor-002", MedicationName: "Atorvastatin", Status: StatusCompleted},
	)
	ctx := context.Background()

	got, err := svc.Prescriptions(ctx, auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("Prescriptions: %v", err)
	}
	if len(got) != 1 || got[0].ID != "rx1" {
		t.Errorf("patient scope returned %d items", len(got))
	}
	if got[0].Doctor == nil || got[0].Doctor.ID != "doctor-001" {
		t.Error("prescriber should be joined")
	}

	got, _ = svc.Prescriptions(ctx, auth.Viewer{UserID: "doctor-001", Role: "doctor"})
	if len(got) != 2 {
		t.Errorf("doctor scope = %d items, want 2", len(got))
	}

	got, _ = svc.Prescriptions(ctx, auth.Viewer{UserID: "admin-001", Role: "admin"})
	if len(got) != 3 {
		t.Errorf("admin scope = %d items, want all 3", len(got))
	}
}

func TestDanglingPrescriberOmitted(t *testing.T) {
	svc := testService(t,
		&Prescription{ID: "rx1", PatientID: "patient-001", DoctorID: "doctor-gone", MedicationName: "Lisinopril", Status: StatusActive},
	)
	got, err := svc.Prescriptions(context.Background(), auth.Viewer{UserID: "patient-001", Role: "patient"})
	if err != nil {
		t.Fatalf("Prescriptions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Doctor != nil {
		t.Error("dangling prescriber should leave Doctor nil")
	}
}

func TestRequestRefillIsAcknowledgementOnly(t *testing.T) {
	svc := testService(t,
		&Prescription{ID: "rx1", PatientID: "patient-001", DoctorID: "doctor-001", MedicationName: "Lisinopril", RefillsRemaining: 2, Status: StatusActive},
	)
	ctx := context.Background()

	msg := svc.RequestRefill(ctx, "rx1")
	if msg != "Refill request submitted successfully" {
		t.Errorf("message = %q", msg)
	}

	p, err := svc.prescriptions.GetByID(ctx, "rx1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.RefillsRemaining != 2 {
		t.Errorf("refillsRemaining = %d, a refill request must not mutate the prescription", p.RefillsRemaining)
	}

	// Unknown ids are acknowledged the same way.
	if msg := svc.RequestRefill(ctx, "missing"); msg == "" {
		t.Error("unknown prescription should still be acknowledged")
	}
}
