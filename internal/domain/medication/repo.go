package medication

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("prescription not found")

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id string) (*Prescription, error)
	List(ctx context.Context) ([]*Prescription, error)
}
