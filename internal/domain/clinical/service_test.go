package clinical

import (
	"context"
	"testing"

	"github.com/neudebri/hms/internal/domain/identity"
)

type userDirStub struct{}

func (userDirStub) GetUser(_ context.Context, id string) (*identity.User, error) {
	if id == "doctor-001" {
		return &identity.User{ID: id, Role: identity.RoleDoctor}, nil
	}
	return nil, identity.ErrNotFound
}

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		NewHealthRecordRepoMem(),
		NewVitalSignsRepoMem(),
		NewLabResultRepoMem(),
		NewWoundRecordRepoMem(),
		userDirStub{},
	)
}

func TestHealthRecordsScopedAndSorted(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	records := []*HealthRecord{
		{ID: "r1", PatientID: "patient-001", RecordType: "condition", Title: "Hypertension", Date: "2023-01-15"},
		{ID: "r2", PatientID: "patient-001", RecordType: "allergy", Title: "Penicillin", Date: "2020-05-10"},
		{ID: "r3", PatientID: "patient-001", RecordType: "immunization", Title: "Flu shot", Date: "2024-10-15"},
		{ID: "r4", PatientID: "patient-002", RecordType: "surgery", Title: "Appendectomy", Date: "2018-03-20"},
	}
	for _, r := range records {
		if _, err := svc.CreateHealthRecord(ctx, r); err != nil {
			t.Fatalf("CreateHealthRecord: %v", err)
		}
	}

	got, err := svc.HealthRecords(ctx, "patient-001")
	if err != nil {
		t.Fatalf("HealthRecords: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"r3", "r1", "r2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q (newest first)", i, got[i].ID, id)
		}
	}
}

func TestLabResultsJoinOrderingDoctor(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	known := "doctor-001"
	gone := "doctor-gone"
	labs := []*LabResult{
		{ID: "l1", PatientID: "patient-001", TestName: "CBC", OrderedBy: &known, OrderedDate: "2025-08-01T00:00:00Z", Status: LabCompleted},
		{ID: "l2", PatientID: "patient-001", TestName: "TSH", OrderedBy: &gone, OrderedDate: "2025-08-05T00:00:00Z", Status: LabPending},
		{ID: "l3", PatientID: "patient-001", TestName: "A1C", OrderedDate: "2025-08-03T00:00:00Z", Status: LabCompleted},
	}
	for _, l := range labs {
		if _, err := svc.CreateLabResult(ctx, l); err != nil {
			t.Fatalf("CreateLabResult: %v", err)
		}
	}

	got, err := svc.LabResults(ctx, "patient-001")
	if err != nil {
		t.Fatalf("LabResults: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "l2" || got[1].ID != "l3" || got[2].ID != "l1" {
		t.Errorf("order = [%s %s %s], want newest ordered first", got[0].ID, got[1].ID, got[2].ID)
	}
	for _, l := range got {
		switch l.ID {
		case "l1":
			if l.OrderedByDoctor == nil {
				t.Error("l1: resolvable orderedBy should be joined")
			}
		case "l2", "l3":
			if l.OrderedByDoctor != nil {
				t.Errorf("%s: dangling or absent orderedBy should leave the join empty", l.ID)
			}
		}
	}
}

func TestVitalSignsNewestFirst(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	for _, v := range []*VitalSigns{
		{ID: "v1", PatientID: "patient-001", RecordedAt: "2025-06-01T08:00:00Z"},
		{ID: "v2", PatientID: "patient-001", RecordedAt: "2025-08-01T08:00:00Z"},
	} {
		if _, err := svc.CreateVitalSigns(ctx, v); err != nil {
			t.Fatalf("CreateVitalSigns: %v", err)
		}
	}
	got, err := svc.VitalSigns(ctx, "patient-001")
	if err != nil {
		t.Fatalf("VitalSigns: %v", err)
	}
	if got[0].ID != "v2" {
		t.Errorf("first = %q, want v2 (newest first)", got[0].ID)
	}
}

func TestWoundRecordsByPatient(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	if _, err := svc.CreateWoundRecord(ctx, &WoundRecord{ID: "w1", PatientID: "patient-001", Date: "2025-08-01T00:00:00Z", WoundType: "Pressure Ulcer"}); err != nil {
		t.Fatalf("CreateWoundRecord: %v", err)
	}
	got, err := svc.WoundRecords(ctx, "patient-001")
	if err != nil {
		t.Fatalf("WoundRecords: %v", err)
	}
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("got %v, want [w1]", got)
	}
	empty, _ := svc.WoundRecords(ctx, "patient-002")
	if len(empty) != 0 {
		t.Errorf("other patient should see nothing, got %d", len(empty))
	}
}
