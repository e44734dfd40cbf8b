package scheduling

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
}
