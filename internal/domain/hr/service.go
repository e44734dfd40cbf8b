package hr

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/neudebri/hms/internal/platform/dates"
)

type Service struct {
	employees  EmployeeRepository
	attendance AttendanceRepository
	leaves     LeaveRepository
	payroll    PayrollRepository
	reviews    ReviewRepository
	shifts     ShiftRepository
	certs      CertificationRepository
	assets     AssetRepository
	now        func() time.Time
}

func NewService(
	employees EmployeeRepository,
	attendance AttendanceRepository,
	leaves LeaveRepository,
	payroll PayrollRepository,
	reviews ReviewRepository,
	shifts ShiftRepository,
	certs CertificationRepository,
	assets AssetRepository,
) *Service {
	return &Service{
		employees:  employees,
		attendance: attendance,
		leaves:     leaves,
		payroll:    payroll,
		reviews:    reviews,
		shifts:     shifts,
		certs:      certs,
		assets:     assets,
		now:        time.Now,
	}
}

func (s *Service) Employees(ctx context.Context) ([]*EmployeeRecord, error) {
	out, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) Employee(ctx context.Context, id string) (*EmployeeRecord, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, e *EmployeeRecord) (*EmployeeRecord, error) {
	if e.Currency == "" {
		e.Currency = "KES"
	}
	if e.Status == "" {
		e.Status = EmployeeActive
	}
	now := s.now().Format(time.RFC3339)
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEmployee merges the supplied fields into the record and bumps
// updatedAt. Absent fields stay as they were.
func (s *Service) UpdateEmployee(ctx context.Context, id string, u EmployeeUpdate) (*EmployeeRecord, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.EmployeeID != nil {
		e.EmployeeID = *u.EmployeeID
	}
	if u.UserID != nil {
		e.UserID = u.UserID
	}
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.Designation != nil {
		e.Designation = *u.Designation
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
	if u.Currency != nil {
		e.Currency = *u.Currency
	}
	if u.JoinDate != nil {
		e.JoinDate = *u.JoinDate
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.Email != nil {
		e.Email = u.Email
	}
	if u.Phone != nil {
		e.Phone = u.Phone
	}
	e.UpdatedAt = s.now().Format(time.RFC3339)
	if err := s.employees.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Attendance lists one employee's records, optionally narrowed to a month
// by string prefix on the date ("2025-08" matches "2025-08-14"). An empty
// employee id matches nothing.
func (s *Service) Attendance(ctx context.Context, employeeID, month string) ([]*AttendanceRecord, error) {
	all, err := s.attendance.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AttendanceRecord, 0, len(all))
	for _, a := range all {
		if a.EmployeeID != employeeID {
			continue
		}
		if month != "" && !strings.HasPrefix(a.Date, month) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].Date, out[j].Date) })
	return out, nil
}

func (s *Service) CreateAttendance(ctx context.Context, a *AttendanceRecord) (*AttendanceRecord, error) {
	a.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.attendance.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Leaves(ctx context.Context, employeeID string) ([]*LeaveRequest, error) {
	all, err := s.leaves.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*LeaveRequest, 0, len(all))
	for _, l := range all {
		if employeeID != "" && l.EmployeeID != employeeID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateLeave stores a new request as pending regardless of what the
// client sent for status.
func (s *Service) CreateLeave(ctx context.Context, l *LeaveRequest) (*LeaveRequest, error) {
	l.Status = "pending"
	l.ApprovedBy = nil
	l.ApprovalDate = nil
	l.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.leaves.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) ApproveLeave(ctx context.Context, id, approvedBy string) (*LeaveRequest, error) {
	l, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Status = "approved"
	l.ApprovedBy = &approvedBy
	approvalDate := s.now().Format(time.RFC3339)
	l.ApprovalDate = &approvalDate
	if err := s.leaves.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Payroll(ctx context.Context, employeeID, month string) ([]*PayrollRecord, error) {
	all, err := s.payroll.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PayrollRecord, 0, len(all))
	for _, p := range all {
		if employeeID != "" && p.EmployeeID != employeeID {
			continue
		}
		if month != "" && p.Month != month {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) CreatePayroll(ctx context.Context, p *PayrollRecord) (*PayrollRecord, error) {
	p.Status = "pending"
	p.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.payroll.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Reviews(ctx context.Context, employeeID string) ([]*PerformanceReview, error) {
	all, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PerformanceReview, 0, len(all))
	for _, r := range all {
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) CreateReview(ctx context.Context, r *PerformanceReview) (*PerformanceReview, error) {
	r.Status = "draft"
	r.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Shifts(ctx context.Context, employeeID string) ([]*ShiftSchedule, error) {
	all, err := s.shifts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ShiftSchedule, 0, len(all))
	for _, sh := range all {
		if employeeID != "" && sh.EmployeeID != employeeID {
			continue
		}
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) CreateShift(ctx context.Context, sh *ShiftSchedule) (*ShiftSchedule, error) {
	sh.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.shifts.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Service) Certifications(ctx context.Context, employeeID string) ([]*Certification, error) {
	all, err := s.certs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Certification, 0, len(all))
	for _, c := range all {
		if employeeID != "" && c.EmployeeID != employeeID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return dates.After(out[i].IssueDate, out[j].IssueDate) })
	return out, nil
}

func (s *Service) CreateCertification(ctx context.Context, c *Certification) (*Certification, error) {
	c.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.certs.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Assets(ctx context.Context, employeeID string) ([]*AssetAllocation, error) {
	all, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*AssetAllocation, 0, len(all))
	for _, a := range all {
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return dates.After(out[i].CreatedAt, out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Service) CreateAsset(ctx context.Context, a *AssetAllocation) (*AssetAllocation, error) {
	a.CreatedAt = s.now().Format(time.RFC3339)
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Stats aggregates the HR dashboard numbers. The absence rate is the share
// of all attendance records marked absent, as a percentage rounded to two
// decimals; zero when there is no attendance at all.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := s.attendance.List(ctx)
	if err != nil {
		return nil, err
	}
	leaves, err := s.leaves.List(ctx)
	if err != nil {
		return nil, err
	}
	payroll, err := s.payroll.List(ctx)
	if err != nil {
		return nil, err
	}
	certs, err := s.certs.List(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalEmployees:      len(employees),
		DepartmentBreakdown: make(map[string]int),
	}
	for _, e := range employees {
		switch e.Status {
		case EmployeeActive:
			st.ActiveEmployees++
		case EmployeeOnLeave:
			st.OnLeaveCount++
		}
		st.DepartmentBreakdown[e.Department]++
	}

	if len(attendance) > 0 {
		absences := 0
		for _, a := range attendance {
			if a.Status == "absent" {
				absences++
			}
		}
		rate := float64(absences) / float64(len(attendance)) * 100
		st.AbsenceRate = math.Round(rate*100) / 100
	}

	for _, l := range leaves {
		if l.Status == "pending" {
			st.UpcomingLeaveRequests++
		}
	}
	for _, p := range payroll {
		if p.Status == "pending" {
			st.PendingPayroll++
		}
	}

	today := s.now()
	cutoff := today.Add(30 * 24 * time.Hour)
	for _, c := range certs {
		if c.ExpiryDate == nil {
			continue
		}
		expiry, ok := dates.Parse(*c.ExpiryDate)
		if !ok {
			continue
		}
		if !expiry.Before(today) && !expiry.After(cutoff) {
			st.CertificationsExpiring++
		}
	}

	return st, nil
}
