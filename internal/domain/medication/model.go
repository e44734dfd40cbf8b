package medication

import "github.com/neudebri/hms/internal/domain/identity"

type PrescriptionStatus string

const (
	StatusActive    PrescriptionStatus = "active"
	StatusCompleted PrescriptionStatus = "completed"
	StatusCancelled PrescriptionStatus = "cancelled"
	StatusOnHold    PrescriptionStatus = "on_hold"
)

type Prescription struct {
	ID               string             `json:"id"`
	PatientID        string             `json:"patientId"`
	DoctorID         string             `json:"doctorId"`
	MedicationName   string             `json:"medicationName"`
	Dosage           string             `json:"dosage"`
	Frequency        string             `json:"frequency"`
	Route            *string            `json:"route"`
	StartDate        string             `json:"startDate"`
	EndDate          *string            `json:"endDate"`
	RefillsRemaining int                `json:"refillsRemaining"`
	RefillsTotal     int                `json:"refillsTotal"`
	Status           PrescriptionStatus `json:"status"`
	Instructions     *string            `json:"instructions"`
	Pharmacy         *string            `json:"pharmacy"`
	Notes            *string            `json:"notes"`
}

// PrescriptionWithDoctor attaches the prescriber at read time.
type PrescriptionWithDoctor struct {
	Prescription
	Doctor *identity.User `json:"doctor,omitempty"`
}
