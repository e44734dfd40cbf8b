package identity

// Role discriminates the four personas of the system and drives read
// scoping for most queries.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RoleAdmin   Role = "admin"
)

// User covers all four roles; the clinical fields (specialty, license,
// department) are only populated for doctors and nurses. The password is
// held in the store for the plaintext login check but never serialized.
type User struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Password      string  `json:"-"`
	Email         string  `json:"email"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Role          Role    `json:"role"`
	Phone         *string `json:"phone"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Address       *string `json:"address"`
	AvatarURL     *string `json:"avatarUrl"`
	Specialty     *string `json:"specialty"`
	LicenseNumber *string `json:"licenseNumber"`
	Department    *string `json:"department"`
	IsActive      bool    `json:"isActive"`
}

// RegisterInput is the payload accepted when creating a user. Optional
// fields absent from the input keep their documented defaults (nil for
// nullable columns, true for isActive).
type RegisterInput struct {
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Email         string  `json:"email"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Role          Role    `json:"role"`
	Phone         *string `json:"phone"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Address       *string `json:"address"`
	AvatarURL     *string `json:"avatarUrl"`
	Specialty     *string `json:"specialty"`
	LicenseNumber *string `json:"licenseNumber"`
	Department    *string `json:"department"`
	IsActive      *bool   `json:"isActive"`
}
