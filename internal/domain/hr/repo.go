package hr

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employee not found")

type EmployeeRepository interface {
	Create(ctx context.Context, e *EmployeeRecord) error
	GetByID(ctx context.Context, id string) (*EmployeeRecord, error)
	Update(ctx context.Context, e *EmployeeRecord) error
	List(ctx context.Context) ([]*EmployeeRecord, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, a *AttendanceRecord) error
	List(ctx context.Context) ([]*AttendanceRecord, error)
}

type LeaveRepository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	List(ctx context.Context) ([]*LeaveRequest, error)
}

type PayrollRepository interface {
	Create(ctx context.Context, p *PayrollRecord) error
	List(ctx context.Context) ([]*PayrollRecord, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *PerformanceReview) error
	List(ctx context.Context) ([]*PerformanceReview, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s *ShiftSchedule) error
	List(ctx context.Context) ([]*ShiftSchedule, error)
}

type CertificationRepository interface {
	Create(ctx context.Context, c *Certification) error
	List(ctx context.Context) ([]*Certification, error)
}

type AssetRepository interface {
	Create(ctx context.Context, a *AssetAllocation) error
	List(ctx context.Context) ([]*AssetAllocation, error)
}
