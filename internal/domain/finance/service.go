package finance

import (
	"context"
	"sort"
	"time"

	"github.com/neudebri/hms/internal/platform/dates"
)

type Service struct {
	billings  BillingRepository
	insurance InsuranceRepository
	payments  PaymentRepository
	now       func() time.Time
}

func NewService(billings BillingRepository, insurance InsuranceRepository, payments PaymentRepository) *Service {
	return &Service{billings: billings, insurance: insurance, payments: payments, now: time.Now}
}

// BillingForPatient returns a patient's bills, newest first.
func (s *Service) BillingForPatient(ctx context.Context, patientID string) ([]*BillingRecord, error) {
	out, err := s.billings.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].CreatedAt, out[j].CreatedAt) })
	return out, nil
}

func (s *Service) CreateBilling(ctx context.Context, b *BillingRecord) (*BillingRecord, error) {
	if b.Status == "" {
		b.Status = BillingPending
	}
	b.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.billings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) InsuranceProviders(ctx context.Context) ([]*InsuranceProvider, error) {
	out, err := s.insurance.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// RecordPayment stores the payment and settles the parent bill: a payment
// covering the full billed amount marks it paid, anything less marks it
// partial. A bill already paid in full is never demoted by a later smaller
// payment. A payment against an unknown bill is kept with no side effect.
func (s *Service) RecordPayment(ctx context.Context, p *Payment) (*Payment, error) {
	p.PaidAt = s.now().Format(time.RFC3339)
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	if b, err := s.billings.GetByID(ctx, p.BillingID); err == nil {
		if p.Amount >= b.Amount {
			b.Status = BillingPaid
		} else if b.Status != BillingPaid {
			b.Status = BillingPartial
		}
		if err := s.billings.Update(ctx, b); err != nil {
			return nil, err
		}
	}
	return p, nil
}
