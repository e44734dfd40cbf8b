package identity

import (
	"context"
	"errors"
	"sort"

	"github.com/neudebri/hms/internal/platform/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

// demoUsernames maps a persona name to the seeded account the demo switch
// logs in as. Unknown roles fall back to the patient persona.
var demoUsernames = map[string]string{
	"patient": "patient",
	"doctor":  "doctor",
	"nurse":   "nurse",
	"admin":   "admin",
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Login looks a user up by username and compares the stored plaintext
// password. There is no session behind this; the caller gets the user back.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// DemoUser returns the fixed seeded account for a persona, bypassing the
// password check. Exists so the UI can be clicked through as each role.
func (s *Service) DemoUser(ctx context.Context, role string) (*User, error) {
	username, ok := demoUsernames[role]
	if !ok {
		username = "patient"
	}
	return s.users.GetByUsername(ctx, username)
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if _, err := s.users.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	u := &User{
		Username:      in.Username,
		Password:      in.Password,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Role:          in.Role,
		Phone:         in.Phone,
		DateOfBirth:   in.DateOfBirth,
		Gender:        in.Gender,
		Address:       in.Address,
		AvatarURL:     in.AvatarURL,
		Specialty:     in.Specialty,
		LicenseNumber: in.LicenseNumber,
		Department:    in.Department,
		IsActive:      in.IsActive == nil || *in.IsActive,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser resolves a weak reference. Dangling ids surface as ErrNotFound;
// callers joining embedded objects treat that as "omit the field".
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) Patients(ctx context.Context) ([]*User, error) {
	return s.sorted(s.users.ListByRole(ctx, RolePatient))
}

// Doctors returns the clinician roster. Nurses are included, matching the
// roster the dashboard's totalDoctors count is defined against.
func (s *Service) Doctors(ctx context.Context) ([]*User, error) {
	return s.sorted(s.users.ListByRole(ctx, RoleDoctor, RoleNurse))
}

func (s *Service) Nurses(ctx context.Context) ([]*User, error) {
	return s.sorted(s.users.ListByRole(ctx, RoleNurse))
}

// Contacts is the inverse of the visibility scope: patients see the
// clinician roster, everyone else sees patients.
func (s *Service) Contacts(ctx context.Context, v auth.Viewer) ([]*User, error) {
	if v.SeesClinicians() {
		return s.Doctors(ctx)
	}
	return s.Patients(ctx)
}

func (s *Service) sorted(users []*User, err error) ([]*User, error) {
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].LastName != users[j].LastName {
			return users[i].LastName < users[j].LastName
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}
