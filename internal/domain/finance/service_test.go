package finance

import (
	"context"
	"sync"
	"testing"
	"time"
)

func testService(t *testing.T, bills ...*BillingRecord) *Service {
	t.Helper()
	billings := NewBillingRepoMem()
	for _, b := range bills {
		if err := billings.Create(context.Background(), b); err != nil {
			t.Fatalf("seed billing: %v", err)
		}
	}
	svc := NewService(billings, NewInsuranceRepoMem(), NewPaymentRepoMem())
	svc.now = func() time.Time { return time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestFullPaymentMarksPaid(t *testing.T) {
	svc := testService(t, &BillingRecord{ID: "bill-1", PatientID: "patient-001", Amount: 12000, Currency: "KES", Status: BillingPending})
	ctx := context.Background()

	p, err := svc.RecordPayment(ctx, &Payment{BillingID: "bill-1", Amount: 12000})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if p.PaidAt == "" {
		t.Error("paidAt should be stamped")
	}

	b, _ := svc.billings.GetByID(ctx, "bill-1")
	if b.Status != BillingPaid {
		t.Errorf("status = %q, want paid", b.Status)
	}
}

func TestPartialPaymentMarksPartial(t *testing.T) {
	svc := testService(t, &BillingRecord{ID: "bill-1", PatientID: "patient-001", Amount: 12000, Status: BillingPending})
	ctx := context.Background()

	if _, err := svc.RecordPayment(ctx, &Payment{BillingID: "bill-1", Amount: 5000}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	b, _ := svc.billings.GetByID(ctx, "bill-1")
	if b.Status != BillingPartial {
		t.Errorf("status = %q, want partial", b.Status)
	}
}

func TestPaidBillNeverRegresses(t *testing.T) {
	svc := testService(t, &BillingRecord{ID: "bill-1", PatientID: "patient-001", Amount: 12000, Status: BillingPending})
	ctx := context.Background()

	if _, err := svc.RecordPayment(ctx, &Payment{BillingID: "bill-1", Amount: 12000}); err != nil {
		t.Fatalf("full payment: %v", err)
	}
	if _, err := svc.RecordPayment(ctx, &Payment{BillingID: "bill-1", Amount: 100}); err != nil {
		t.Fatalf("later small payment: %v", err)
	}
	b, _ := svc.billings.GetByID(ctx, "bill-1")
	if b.Status != BillingPaid {
		t.Errorf("status = %q, a later smaller payment must not demote a paid bill", b.Status)
	}
}

func TestPaymentAgainstUnknownBillKept(t *testing.T) {
	svc := testService(t)
	p, err := svc.RecordPayment(context.Background(), &Payment{BillingID: "nope", Amount: 100})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if p.ID == "" {
		t.Error("payment should still be stored")
	}
}

func TestCreateBillingDefaults(t *testing.T) {
	svc := testService(t)
	b, err := svc.CreateBilling(context.Background(), &BillingRecord{PatientID: "patient-001", Amount: 500})
	if err != nil {
		t.Fatalf("CreateBilling: %v", err)
	}
	if b.Status != BillingPending {
		t.Errorf("status = %q, want pending default", b.Status)
	}
	if b.CreatedAt == "" {
		t.Error("createdAt should be stamped server-side")
	}
}

func TestListedBillsAreDetachedCopies(t *testing.T) {
	svc := testService(t, &BillingRecord{ID: "bill-1", PatientID: "patient-001", Amount: 12000, Status: BillingPending})
	ctx := context.Background()

	got, err := svc.BillingForPatient(ctx, "patient-001")
	if err != nil {
		t.Fatalf("BillingForPatient: %v", err)
	}
	got[0].Status = BillingCancelled
	got[0].Amount = 0

	b, _ := svc.billings.GetByID(ctx, "bill-1")
	if b.Status != BillingPending || b.Amount != 12000 {
		t.Errorf("stored bill = %v/%s, mutating a listed record must not touch the store", b.Amount, b.Status)
	}
}

func TestConcurrentPaymentsAndReads(t *testing.T) {
	svc := testService(t, &BillingRecord{ID: "bill-1", PatientID: "patient-001", Amount: 12000, Status: BillingPending})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordPayment(ctx, &Payment{BillingID: "bill-1", Amount: 12000}); err != nil {
				t.Errorf("RecordPayment: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.BillingForPatient(ctx, "patient-001"); err != nil {
				t.Errorf("BillingForPatient: %v", err)
			}
		}()
	}
	wg.Wait()

	b, _ := svc.billings.GetByID(ctx, "bill-1")
	if b.Status != BillingPaid {
		t.Errorf("status = %q, want paid after full payments", b.Status)
	}
}

func TestBillingForPatientNewestFirst(t *testing.T) {
	svc := testService(t,
		&BillingRecord{ID: "b1", PatientID: "patient-001", Amount: 1, CreatedAt: "2025-08-01T00:00:00Z"},
		&BillingRecord{ID: "b2", PatientID: "patient-001", Amount: 2, CreatedAt: "2025-08-10T00:00:00Z"},
		&BillingRecord{ID: "b3", PatientID: "patient-002", Amount: 3, CreatedAt: "2025-08-05T00:00:00Z"},
	)
	got, err := svc.BillingForPatient(context.Background(), "patient-001")
	if err != nil {
		t.Fatalf("BillingForPatient: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b2" || got[1].ID != "b1" {
		t.Errorf("got %v, want [b2 b1]", got)
	}
}
