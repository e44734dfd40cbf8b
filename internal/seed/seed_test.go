package seed

import (
	"context"
	"testing"

	"github.com/neudebri/hms/internal/domain/admin"
	"github.com/neudebri/hms/internal/domain/clinical"
	"github.com/neudebri/hms/internal/domain/finance"
	"github.com/neudebri/hms/internal/domain/hr"
	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/domain/inbox"
	"github.com/neudebri/hms/internal/domain/medication"
	"github.com/neudebri/hms/internal/domain/scheduling"
	"github.com/neudebri/hms/internal/platform/auth"
)

func seededStores(t *testing.T) Stores {
	t.Helper()
	st := Stores{
		Users:         identity.NewUserRepoMem(),
		Appointments:  scheduling.NewAppointmentRepoMem(),
		HealthRecords: clinical.NewHealthRecordRepoMem(),
		VitalSigns:    clinical.NewVitalSignsRepoMem(),
		LabResults:    clinical.NewLabResultRepoMem(),
		WoundRecords:  clinical.NewWoundRecordRepoMem(),
		Prescriptions: medication.NewPrescriptionRepoMem(),
		Messages:      inbox.NewMessageRepoMem(),
		Departments:   admin.NewDepartmentRepoMem(),
		Billings:      finance.NewBillingRepoMem(),
		Insurances:    finance.NewInsuranceRepoMem(),
		Employees:     hr.NewEmployeeRepoMem(),
		Attendance:    hr.NewAttendanceRepoMem(),
		Leaves:        hr.NewLeaveRepoMem(),
		Payroll:       hr.NewPayrollRepoMem(),
		Shifts:        hr.NewShiftRepoMem(),
		Certs:         hr.NewCertificationRepoMem(),
		Assets:        hr.NewAssetRepoMem(),
	}
	if err := Apply(context.Background(), st); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return st
}

func TestSeededLoginAndPersonas(t *testing.T) {
	st := seededStores(t)
	svc := identity.NewService(st.Users)
	ctx := context.Background()

	u, err := svc.Login(ctx, "patient", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != PatientID || u.Email != "john.doe@email.com" {
		t.Errorf("patient persona = %s/%s", u.ID, u.Email)
	}

	for _, role := range []string{"patient", "doctor", "nurse", "admin"} {
		if _, err := svc.DemoUser(ctx, role); err != nil {
			t.Errorf("DemoUser(%s): %v", role, err)
		}
	}
}

func TestSeededUpcomingAppointments(t *testing.T) {
	st := seededStores(t)
	svc := scheduling.NewService(st.Appointments, identity.NewService(st.Users))

	// apt-1 (in two days) and apt-2 (in five) are ahead of now; apt-3 is a
	// completed visit a week back.
	got, err := svc.UpcomingAppointments(context.Background(), auth.Viewer{UserID: PatientID, Role: "patient"})
	if err != nil {
		t.Fatalf("UpcomingAppointments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "apt-1" || got[1].ID != "apt-2" {
		t.Errorf("order = [%s %s], want soonest first [apt-1 apt-2]", got[0].ID, got[1].ID)
	}
	if got[0].Doctor == nil || got[0].Doctor.ID != DoctorID {
		t.Error("seeded appointment should join its doctor")
	}
}

func TestSeededBillingPaysOff(t *testing.T) {
	st := seededStores(t)
	svc := finance.NewService(st.Billings, st.Insurances, finance.NewPaymentRepoMem())
	ctx := context.Background()

	bills, err := svc.BillingForPatient(ctx, PatientID)
	if err != nil {
		t.Fatalf("BillingForPatient: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("len = %d, want 1 seeded bill", len(bills))
	}
	b := bills[0]
	if b.Amount != 12000 || b.Status != finance.BillingPending {
		t.Fatalf("seeded bill = %v/%s, want 12000/pending", b.Amount, b.Status)
	}

	if _, err := svc.RecordPayment(ctx, &finance.Payment{BillingID: b.ID, Amount: b.Amount}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	bills, _ = svc.BillingForPatient(ctx, PatientID)
	if bills[0].Status != finance.BillingPaid {
		t.Errorf("status after full payment = %q, want paid", bills[0].Status)
	}
}

func TestSeededUnreadMessages(t *testing.T) {
	st := seededStores(t)
	svc := inbox.NewService(st.Messages, identity.NewService(st.Users))

	// msg-1 and msg-3 land in the patient's inbox unread; msg-2 is the
	// patient's own outbound question and never counts.
	n, err := svc.UnreadCount(context.Background(), PatientID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if n != 2 {
		t.Errorf("unread = %d, want 2", n)
	}

	msgs, err := svc.Messages(context.Background(), PatientID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("messages = %d, want all 3 seeded threads", len(msgs))
	}
}

func TestDumpReadsWholeDataset(t *testing.T) {
	st := seededStores(t)

	d, err := Dump(context.Background(), st)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"users", len(d.Users), 5},
		{"departments", len(d.Departments), 6},
		{"appointments", len(d.Appointments), 3},
		{"healthRecords", len(d.HealthRecords), 6},
		{"vitalSigns", len(d.VitalSigns), 3},
		{"labResults", len(d.LabResults), 4},
		{"woundRecords", len(d.WoundRecords), 1},
		{"prescriptions", len(d.Prescriptions), 3},
		{"messages", len(d.Messages), 3},
		{"billing", len(d.Billing), 1},
		{"insuranceProviders", len(d.Insurances), 2},
		{"employees", len(d.Employees), 3},
		{"attendance", len(d.Attendance), 4},
		{"leaveRequests", len(d.Leaves), 1},
		{"payroll", len(d.Payroll), 1},
		{"shifts", len(d.Shifts), 1},
		{"certifications", len(d.Certifications), 2},
		{"assets", len(d.Assets), 1},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if d.Users[0].ID != AdminID {
		t.Errorf("users[0] = %q, collections should come back sorted by id", d.Users[0].ID)
	}
	if d.Appointments[0].ID != "apt-1" {
		t.Errorf("appointments[0] = %q, want apt-1", d.Appointments[0].ID)
	}
}

func TestSeededHRStats(t *testing.T) {
	st := seededStores(t)
	svc := hr.NewService(st.Employees, st.Attendance, st.Leaves, st.Payroll, hr.NewReviewRepoMem(), st.Shifts, st.Certs, st.Assets)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEmployees != 3 || stats.ActiveEmployees != 2 || stats.OnLeaveCount != 1 {
		t.Errorf("headcount = %d/%d/%d, want 3/2/1", stats.TotalEmployees, stats.ActiveEmployees, stats.OnLeaveCount)
	}
	if stats.UpcomingLeaveRequests != 1 {
		t.Errorf("upcomingLeaveRequests = %d, want 1", stats.UpcomingLeaveRequests)
	}
	if stats.PendingPayroll != 1 {
		t.Errorf("pendingPayroll = %d, want 1", stats.PendingPayroll)
	}
	// cert-1 expires in twenty days, cert-2 much later.
	if stats.CertificationsExpiring != 1 {
		t.Errorf("certificationsExpiring = %d, want 1", stats.CertificationsExpiring)
	}
	if stats.DepartmentBreakdown["Internal Medicine"] != 2 {
		t.Errorf("departmentBreakdown = %v", stats.DepartmentBreakdown)
	}
}
