package admin

import (
	"context"
	"sort"
)

type Service struct {
	departments DepartmentRepository
}

func NewService(departments DepartmentRepository) *Service {
	return &Service{departments: departments}
}

func (s *Service) Departments(ctx context.Context) ([]*Department, error) {
	out, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Service) CreateDepartment(ctx context.Context, in DepartmentInput) (*Department, error) {
	d := &Department{
		Name:         in.Name,
		Description:  in.Description,
		HeadDoctorID: in.HeadDoctorID,
		Location:     in.Location,
		Phone:        in.Phone,
		IsActive:     in.IsActive == nil || *in.IsActive,
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
