package admin

import (
	"context"
	"testing"
)

func TestCreateDepartmentActiveByDefault(t *testing.T) {
	svc := NewService(NewDepartmentRepoMem())
	ctx := context.Background()

	d, err := svc.CreateDepartment(ctx, DepartmentInput{Name: "Cardiology"})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if !d.IsActive {
		t.Error("isActive should default to true")
	}
	if d.ID == "" {
		t.Error("id should be assigned")
	}

	inactive := false
	d, err = svc.CreateDepartment(ctx, DepartmentInput{Name: "Archives", IsActive: &inactive})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if d.IsActive {
		t.Error("explicit isActive=false should be honored")
	}
}

func TestDepartmentsStableOrder(t *testing.T) {
	repo := NewDepartmentRepoMem()
	ctx := context.Background()
	for _, d := range []*Department{
		{ID: "dept-3", Name: "Pediatrics"},
		{ID: "dept-1", Name: "Internal Medicine"},
		{ID: "dept-2", Name: "Cardiology"},
	} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	svc := NewService(repo)

	got, err := svc.Departments(ctx)
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"dept-1", "dept-2", "dept-3"} {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want)
		}
	}
}
