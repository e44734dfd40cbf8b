package finance

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("billing record not found")

type BillingRepository interface {
	Create(ctx context.Context, b *BillingRecord) error
	GetByID(ctx context.Context, id string) (*BillingRecord, error)
	Update(ctx context.Context, b *BillingRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]*BillingRecord, error)
}

type InsuranceRepository interface {
	Create(ctx context.Context, p *InsuranceProvider) error
	List(ctx context.Context) ([]*InsuranceProvider, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	List(ctx context.Context) ([]*Payment, error)
}
