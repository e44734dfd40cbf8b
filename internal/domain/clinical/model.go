package clinical

import "github.com/neudebri/hms/internal/domain/identity"

// HealthRecord is one entry in a patient's medical history: a diagnosis,
// condition, allergy, surgery or immunization.
type HealthRecord struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patientId"`
	RecordType  string  `json:"recordType"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	DoctorID    *string `json:"doctorId"`
	Severity    *string `json:"severity"`
	Status      *string `json:"status"`
}

type VitalSigns struct {
	ID                     string  `json:"id"`
	PatientID              string  `json:"patientId"`
	RecordedAt             string  `json:"recordedAt"`
	RecordedBy             *string `json:"recordedBy"`
	BloodPressureSystolic  *int    `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *int    `json:"bloodPressureDiastolic"`
	HeartRate              *int    `json:"heartRate"`
	Temperature            *string `json:"temperature"`
	RespiratoryRate        *int    `json:"respiratoryRate"`
	OxygenSaturation       *int    `json:"oxygenSaturation"`
	Weight                 *string `json:"weight"`
	Height                 *string `json:"height"`
	Notes                  *string `json:"notes"`
}

type LabResultStatus string

const (
	LabPending    LabResultStatus = "pending"
	LabInProgress LabResultStatus = "in_progress"
	LabCompleted  LabResultStatus = "completed"
	LabReviewed   LabResultStatus = "reviewed"
)

type LabResult struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patientId"`
	TestName    string          `json:"testName"`
	TestCode    *string         `json:"testCode"`
	OrderedBy   *string         `json:"orderedBy"`
	OrderedDate string          `json:"orderedDate"`
	ResultDate  *string         `json:"resultDate"`
	Status      LabResultStatus `json:"status"`
	Result      *string         `json:"result"`
	NormalRange *string         `json:"normalRange"`
	Unit        *string         `json:"unit"`
	IsAbnormal  bool            `json:"isAbnormal"`
	Notes       *string         `json:"notes"`
}

// LabResultWithDoctor attaches the ordering clinician at read time.
type LabResultWithDoctor struct {
	LabResult
	OrderedByDoctor *identity.User `json:"orderedByDoctor,omitempty"`
}

type WoundRecord struct {
	ID            string   `json:"id"`
	PatientID     string   `json:"patientId"`
	NurseID       *string  `json:"nurseId"`
	DoctorID      *string  `json:"doctorId"`
	Date          string   `json:"date"`
	WoundType     string   `json:"woundType"`
	Size          *string  `json:"size"`
	Stage         *string  `json:"stage"`
	Description   *string  `json:"description"`
	TreatmentPlan *string  `json:"treatmentPlan"`
	Photos        []string `json:"photos"`
	Notes         *string  `json:"notes"`
}
