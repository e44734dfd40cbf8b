package admin

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("department not found")

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	List(ctx context.Context) ([]*Department, error)
}
