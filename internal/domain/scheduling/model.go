package scheduling

import "github.com/neudebri/hms/internal/domain/identity"

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

type AppointmentType string

const (
	TypeInPerson  AppointmentType = "in_person"
	TypeVirtual   AppointmentType = "virtual"
	TypeFollowUp  AppointmentType = "follow_up"
	TypeEmergency AppointmentType = "emergency"
)

// Appointment references its patient and doctor by weak id; nothing
// enforces that either id resolves. Dates are ISO-8601 strings.
type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patientId"`
	DoctorID   string            `json:"doctorId"`
	DateTime   string            `json:"dateTime"`
	EndTime    string            `json:"endTime"`
	Type       AppointmentType   `json:"type"`
	Status     AppointmentStatus `json:"status"`
	Reason     *string           `json:"reason"`
	Notes      *string           `json:"notes"`
	Department *string           `json:"department"`
}

// AppointmentWithDetails carries the denormalized patient and doctor
// objects attached at read time. A dangling reference omits the field.
type AppointmentWithDetails struct {
	Appointment
	Patient *identity.User `json:"patient,omitempty"`
	Doctor  *identity.User `json:"doctor,omitempty"`
}
