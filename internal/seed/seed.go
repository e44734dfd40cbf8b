// Package seed loads the demo dataset the portal ships with: one patient,
// three clinicians, an admin, and enough clinical, billing and HR history
// for every screen to render with real-looking data.
package seed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/neudebri/hms/internal/domain/admin"
	"github.com/neudebri/hms/internal/domain/clinical"
	"github.com/neudebri/hms/internal/domain/finance"
	"github.com/neudebri/hms/internal/domain/hr"
	"github.com/neudebri/hms/internal/domain/identity"
	"github.com/neudebri/hms/internal/domain/inbox"
	"github.com/neudebri/hms/internal/domain/medication"
	"github.com/neudebri/hms/internal/domain/scheduling"
)

// Stores bundles every repository the seed writes into.
type Stores struct {
	Users         identity.UserRepository
	Appointments  scheduling.AppointmentRepository
	HealthRecords clinical.HealthRecordRepository
	VitalSigns    clinical.VitalSignsRepository
	LabResults    clinical.LabResultRepository
	WoundRecords  clinical.WoundRecordRepository
	Prescriptions medication.PrescriptionRepository
	Messages      inbox.MessageRepository
	Departments   admin.DepartmentRepository
	Billings      finance.BillingRepository
	Insurances    finance.InsuranceRepository
	Employees     hr.EmployeeRepository
	Attendance    hr.AttendanceRepository
	Leaves        hr.LeaveRepository
	Payroll       hr.PayrollRepository
	Shifts        hr.ShiftRepository
	Certs         hr.CertificationRepository
	Assets        hr.AssetRepository
}

const (
	PatientID = "patient-001"
	DoctorID  = "doctor-001"
	Doctor2ID = "doctor-002"
	AdminID   = "admin-001"
	NurseID   = "nurse-001"
)

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

// Apply writes the full demo dataset. Relative dates (appointments, vitals,
// labs) are anchored to the moment it runs.
func Apply(ctx context.Context, st Stores) error {
	now := time.Now()

	if err := seedUsers(ctx, st); err != nil {
		return err
	}
	if err := seedDepartments(ctx, st); err != nil {
		return err
	}
	if err := seedAppointments(ctx, st, now); err != nil {
		return err
	}
	if err := seedClinical(ctx, st, now); err != nil {
		return err
	}
	if err := seedPrescriptions(ctx, st, now); err != nil {
		return err
	}
	if err := seedMessages(ctx, st, now); err != nil {
		return err
	}
	if err := seedFinance(ctx, st, now); err != nil {
		return err
	}
	return seedHR(ctx, st, now)
}

// Dataset is the demo data read back out of the stores, keyed the way the
// API serializes each collection. Produced by the seed subcommand for
// inspection.
type Dataset struct {
	Users          []*identity.User             `json:"users"`
	Departments    []*admin.Department          `json:"departments"`
	Appointments   []*scheduling.Appointment    `json:"appointments"`
	HealthRecords  []*clinical.HealthRecord     `json:"healthRecords"`
	VitalSigns     []*clinical.VitalSigns       `json:"vitalSigns"`
	LabResults     []*clinical.LabResult        `json:"labResults"`
	WoundRecords   []*clinical.WoundRecord      `json:"woundRecords"`
	Prescriptions  []*medication.Prescription   `json:"prescriptions"`
	Messages       []*inbox.Message             `json:"messages"`
	Billing        []*finance.BillingRecord     `json:"billing"`
	Insurances     []*finance.InsuranceProvider `json:"insuranceProviders"`
	Employees      []*hr.EmployeeRecord         `json:"employees"`
	Attendance     []*hr.AttendanceRecord       `json:"attendance"`
	Leaves         []*hr.LeaveRequest           `json:"leaveRequests"`
	Payroll        []*hr.PayrollRecord          `json:"payroll"`
	Shifts         []*hr.ShiftSchedule          `json:"shifts"`
	Certifications []*hr.Certification          `json:"certifications"`
	Assets         []*hr.AssetAllocation        `json:"assets"`
}

// Dump reads the seeded dataset back out of the stores. Every demo record
// hangs off the seeded patient, so the patient-scoped stores are read
// through that id. Each collection comes back sorted by id so the output
// is stable.
func Dump(ctx context.Context, st Stores) (*Dataset, error) {
	d := &Dataset{}
	var err error

	if d.Users, err = st.Users.ListByRole(ctx, identity.RolePatient, identity.RoleDoctor, identity.RoleNurse, identity.RoleAdmin); err != nil {
		return nil, err
	}
	if d.Departments, err = st.Departments.List(ctx); err != nil {
		return nil, err
	}
	if d.Appointments, err = st.Appointments.List(ctx); err != nil {
		return nil, err
	}
	if d.HealthRecords, err = st.HealthRecords.ListByPatient(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.VitalSigns, err = st.VitalSigns.ListByPatient(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.LabResults, err = st.LabResults.ListByPatient(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.WoundRecords, err = st.WoundRecords.ListByPatient(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.Prescriptions, err = st.Prescriptions.List(ctx); err != nil {
		return nil, err
	}
	if d.Messages, err = st.Messages.ListByParticipant(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.Billing, err = st.Billings.ListByPatient(ctx, PatientID); err != nil {
		return nil, err
	}
	if d.Insurances, err = st.Insurances.List(ctx); err != nil {
		return nil, err
	}
	if d.Employees, err = st.Employees.List(ctx); err != nil {
		return nil, err
	}
	if d.Attendance, err = st.Attendance.List(ctx); err != nil {
		return nil, err
	}
	if d.Leaves, err = st.Leaves.List(ctx); err != nil {
		return nil, err
	}
	if d.Payroll, err = st.Payroll.List(ctx); err != nil {
		return nil, err
	}
	if d.Shifts, err = st.Shifts.List(ctx); err != nil {
		return nil, err
	}
	if d.Certifications, err = st.Certs.List(ctx); err != nil {
		return nil, err
	}
	if d.Assets, err = st.Assets.List(ctx); err != nil {
		return nil, err
	}

	sort.Slice(d.Users, func(i, j int) bool { return d.Users[i].ID < d.Users[j].ID })
	sort.Slice(d.Departments, func(i, j int) bool { return d.Departments[i].ID < d.Departments[j].ID })
	sort.Slice(d.Appointments, func(i, j int) bool { return d.Appointments[i].ID < d.Appointments[j].ID })
	sort.Slice(d.HealthRecords, func(i, j int) bool { return d.HealthRecords[i].ID < d.HealthRecords[j].ID })
	sort.Slice(d.VitalSigns, func(i, j int) bool { return d.VitalSigns[i].ID < d.VitalSigns[j].ID })
	sort.Slice(d.LabResults, func(i, j int) bool { return d.LabResults[i].ID < d.LabResults[j].ID })
	sort.Slice(d.WoundRecords, func(i, j int) bool { return d.WoundRecords[i].ID < d.WoundRecords[j].ID })
	sort.Slice(d.Prescriptions, func(i, j int) bool { return d.Prescriptions[i].ID < d.Prescriptions[j].ID })
	sort.Slice(d.Messages, func(i, j int) bool { return d.Messages[i].ID < d.Messages[j].ID })
	sort.Slice(d.Billing, func(i, j int) bool { return d.Billing[i].ID < d.Billing[j].ID })
	sort.Slice(d.Insurances, func(i, j int) bool { return d.Insurances[i].ID < d.Insurances[j].ID })
	sort.Slice(d.Employees, func(i, j int) bool { return d.Employees[i].ID < d.Employees[j].ID })
	sort.Slice(d.Attendance, func(i, j int) bool { return d.Attendance[i].ID < d.Attendance[j].ID })
	sort.Slice(d.Leaves, func(i, j int) bool { return d.Leaves[i].ID < d.Leaves[j].ID })
	sort.Slice(d.Payroll, func(i, j int) bool { return d.Payroll[i].ID < d.Payroll[j].ID })
	sort.Slice(d.Shifts, func(i, j int) bool { return d.Shifts[i].ID < d.Shifts[j].ID })
	sort.Slice(d.Certifications, func(i, j int) bool { return d.Certifications[i].ID < d.Certifications[j].ID })
	sort.Slice(d.Assets, func(i, j int) bool { return d.Assets[i].ID < d.Assets[j].ID })

	return d, nil
}

func seedUsers(ctx context.Context, st Stores) error {
	users := []*identity.User{
		{
			ID:          PatientID,
			Username:    "patient",
			Password:    "password",
			Email:       "john.doe@email.com",
			FirstName:   "John",
			LastName:    "Doe",
			Role:        identity.RolePatient,
			Phone:       str("+254 712 345 678"),
			DateOfBirth: str("1985-06-15"),
			Gender:      str("male"),
			Address:     str("123 Health Street, Nairobi, Kenya"),
			IsActive:    true,
		},
		{
			ID:            DoctorID,
			Username:      "doctor",
			Password:      "password",
			Email:         "dr.smith@neudebri.com",
			FirstName:     "Sarah",
			LastName:      "Smith",
			Role:          identity.RoleDoctor,
			Phone:         str("+254 722 111 222"),
			DateOfBirth:   str("1978-03-20"),
			Gender:        str("female"),
			Address:       str("Neudebri Medical Center"),
			Specialty:     str("Internal Medicine"),
			LicenseNumber: str("KEN-MED-12345"),
			Department:    str("Internal Medicine"),
			IsActive:      true,
		},
		{
			ID:            Doctor2ID,
			Username:      "doctor2",
			Password:      "password",
			Email:         "dr.johnson@neudebri.com",
			FirstName:     "Michael",
			LastName:      "Johnson",
			Role:          identity.RoleDoctor,
			Phone:         str("+254 722 333 444"),
			DateOfBirth:   str("1982-09-10"),
			Gender:        str("male"),
			Address:       str("Neudebri Medical Center"),
			Specialty:     str("Cardiology"),
			LicenseNumber: str("KEN-MED-67890"),
			Department:    str("Cardiology"),
			IsActive:      true,
		},
		{
			ID:          AdminID,
			Username:    "admin",
			Password:    "password",
			Email:       "admin@neudebri.com",
			FirstName:   "Admin",
			LastName:    "User",
			Role:        identity.RoleAdmin,
			Phone:       str("+254 700 000 000"),
			DateOfBirth: str("1990-01-01"),
			Gender:      str("other"),
			Address:     str("Neudebri Health System HQ"),
			Department:  str("Administration"),
			IsActive:    true,
		},
		{
			ID:            NurseID,
			Username:      "nurse",
			Password:      "password",
			Email:         "nurse.mary@neudebri.com",
			FirstName:     "Mary",
			LastName:      "Wanjiku",
			Role:          identity.RoleNurse,
			Phone:         str("+254 711 555 666"),
			DateOfBirth:   str("1992-07-25"),
			Gender:        str("female"),
			Address:       str("Neudebri Medical Center"),
			Specialty:     str("General Nursing"),
			LicenseNumber: str("KEN-NUR-11111"),
			Department:    str("Internal Medicine"),
			IsActive:      true,
		},
	}
	for _, u := range users {
		if err := st.Users.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func seedDepartments(ctx context.Context, st Stores) error {
	depts := []struct {
		name, description, location, phone string
		head                               *string
	}{
		{"Internal Medicine", "General medical care and diagnostics", "Building A, Floor 2", "+254 20 111 1111", str(DoctorID)},
		{"Cardiology", "Heart and cardiovascular care", "Building B, Floor 1", "+254 20 222 2222", str(Doctor2ID)},
		{"Pediatrics", "Child and adolescent healthcare", "Building A, Floor 3", "+254 20 333 3333", nil},
		{"Laboratory", "Diagnostic testing and analysis", "Building C, Floor 1", "+254 20 444 4444", nil},
		{"Radiology", "Medical imaging services", "Building C, Floor 2", "+254 20 555 5555", nil},
		{"Pharmacy", "Medication dispensing and consultation", "Building A, Floor 1", "+254 20 666 6666", nil},
	}
	for i, d := range depts {
		dept := &admin.Department{
			ID:           fmt.Sprintf("dept-%d", i+1),
			Name:         d.name,
			Description:  str(d.description),
			HeadDoctorID: d.head,
			Location:     str(d.location),
			Phone:        str(d.phone),
			IsActive:     true,
		}
		if err := st.Departments.Create(ctx, dept); err != nil {
			return err
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, st Stores, now time.Time) error {
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }
	appointments := []*scheduling.Appointment{
		{
			ID:         "apt-1",
			PatientID:  PatientID,
			DoctorID:   DoctorID,
			DateTime:   iso(now.Add(2 * 24 * time.Hour)),
			EndTime:    iso(now.Add(2*24*time.Hour + 30*time.Minute)),
			Type:       scheduling.TypeInPerson,
			Status:     scheduling.StatusScheduled,
			Reason:     str("Annual physical examination"),
			Department: str("Internal Medicine"),
		},
		{
			ID:         "apt-2",
			PatientID:  PatientID,
			DoctorID:   Doctor2ID,
			DateTime:   iso(now.Add(5 * 24 * time.Hour)),
			EndTime:    iso(now.Add(5*24*time.Hour + 30*time.Minute)),
			Type:       scheduling.TypeVirtual,
			Status:     scheduling.StatusConfirmed,
			Reason:     str("Follow-up on blood pressure management"),
			Department: str("Cardiology"),
		},
		{
			ID:         "apt-3",
			PatientID:  PatientID,
			DoctorID:   DoctorID,
			DateTime:   iso(now.Add(-7 * 24 * time.Hour)),
			EndTime:    iso(now.Add(-7*24*time.Hour + 30*time.Minute)),
			Type:       scheduling.TypeInPerson,
			Status:     scheduling.StatusCompleted,
			Reason:     str("Flu symptoms consultation"),
			Department: str("Internal Medicine"),
		},
	}
	for _, a := range appointments {
		if err := st.Appointments.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedClinical(ctx context.Context, st Stores, now time.Time) error {
	records := []*clinical.HealthRecord{
		{ID: "hr-1", RecordType: "condition", Title: "Hypertension", Description: str("Essential hypertension, well controlled with medication"), Date: "2023-01-15", Severity: str("moderate"), Status: str("chronic")},
		{ID: "hr-2", RecordType: "allergy", Title: "Penicillin", Description: str("Allergic reaction to penicillin-based antibiotics"), Date: "2020-05-10", Severity: str("severe"), Status: str("active")},
		{ID: "hr-3", RecordType: "allergy", Title: "Shellfish", Description: str("Mild allergic reaction to shellfish"), Date: "2019-08-22", Severity: str("mild"), Status: str("active")},
		{ID: "hr-4", RecordType: "immunization", Title: "COVID-19 Vaccine (Pfizer)", Description: str("Third booster dose administered"), Date: "2023-11-01"},
		{ID: "hr-5", RecordType: "immunization", Title: "Influenza Vaccine", Description: str("Annual flu shot"), Date: "2024-10-15"},
		{ID: "hr-6", RecordType: "surgery", Title: "Appendectomy", Description: str("Laparoscopic appendectomy performed successfully"), Date: "2018-03-20", Status: str("resolved")},
	}
	for _, r := range records {
		r.PatientID = PatientID
		r.DoctorID = str(DoctorID)
		if err := st.HealthRecords.Create(ctx, r); err != nil {
			return err
		}
	}

	vitals := []*clinical.VitalSigns{
		{BloodPressureSystolic: intp(128), BloodPressureDiastolic: intp(82), HeartRate: intp(72), Temperature: str("98.4"), RespiratoryRate: intp(16), OxygenSaturation: intp(98), Weight: str("78"), Height: str("175")},
		{BloodPressureSystolic: intp(130), BloodPressureDiastolic: intp(85), HeartRate: intp(75), Temperature: str("98.6"), RespiratoryRate: intp(18), OxygenSaturation: intp(97), Weight: str("78.5"), Height: str("175")},
		{BloodPressureSystolic: intp(125), BloodPressureDiastolic: intp(80), HeartRate: intp(70), Temperature: str("98.2"), RespiratoryRate: intp(15), OxygenSaturation: intp(99), Weight: str("77.8"), Height: str("175")},
	}
	for i, v := range vitals {
		v.ID = fmt.Sprintf("vs-%d", i+1)
		v.PatientID = PatientID
		v.RecordedAt = now.Add(time.Duration(-i) * 30 * 24 * time.Hour).Format(time.RFC3339)
		v.RecordedBy = str(NurseID)
		if err := st.VitalSigns.Create(ctx, v); err != nil {
			return err
		}
	}

	labs := []*clinical.LabResult{
		{TestName: "Complete Blood Count (CBC)", TestCode: str("CBC-001"), Status: clinical.LabCompleted, Result: str("Normal"), NormalRange: str("N/A"), Unit: str("")},
		{TestName: "Hemoglobin A1C", TestCode: str("HBA1C-001"), Status: clinical.LabCompleted, Result: str("5.8"), NormalRange: str("4.0-5.6"), Unit: str("%"), IsAbnormal: true},
		{TestName: "Lipid Panel", TestCode: str("LIPID-001"), Status: clinical.LabCompleted, Result: str("Total: 195"), NormalRange: str("<200"), Unit: str("mg/dL")},
		{TestName: "Thyroid Panel (TSH)", TestCode: str("TSH-001"), Status: clinical.LabPending, NormalRange: str("0.4-4.0"), Unit: str("mIU/L")},
	}
	for i, l := range labs {
		l.ID = fmt.Sprintf("lab-%d", i+1)
		l.PatientID = PatientID
		l.OrderedBy = str(DoctorID)
		l.OrderedDate = now.Add(time.Duration(-(i + 1)) * 7 * 24 * time.Hour).Format(time.RFC3339)
		if l.Status == clinical.LabCompleted {
			l.ResultDate = str(now.Add(time.Duration(-i) * 5 * 24 * time.Hour).Format(time.RFC3339))
		}
		if err := st.LabResults.Create(ctx, l); err != nil {
			return err
		}
	}

	wound := &clinical.WoundRecord{
		ID:            "wound-1",
		PatientID:     PatientID,
		NurseID:       str(NurseID),
		DoctorID:      str(DoctorID),
		Date:          now.Format(time.RFC3339),
		WoundType:     "Pressure Ulcer",
		Size:          str("2cm x 1cm"),
		Stage:         str("Stage II"),
		Description:   str("Small superficial ulcer on left heel"),
		TreatmentPlan: str("Cleanse with saline, apply dressing twice daily"),
		Notes:         str("Monitor for infection"),
	}
	return st.WoundRecords.Create(ctx, wound)
}

func seedPrescriptions(ctx context.Context, st Stores, now time.Time) error {
	prescriptions := []*medication.Prescription{
		{MedicationName: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Route: str("oral"), RefillsRemaining: 2, RefillsTotal: 3, Status: medication.StatusActive, Instructions: str("Take in the morning with water"), Pharmacy: str("Neudebri Pharmacy")},
		{MedicationName: "Metformin", Dosage: "500mg", Frequency: "Twice daily", Route: str("oral"), RefillsRemaining: 1, RefillsTotal: 2, Status: medication.StatusActive, Instructions: str("Take with meals"), Pharmacy: str("Neudebri Pharmacy")},
		{MedicationName: "Atorvastatin", Dosage: "20mg", Frequency: "Once daily", Route: str("oral"), RefillsRemaining: 0, RefillsTotal: 3, Status: medication.StatusCompleted, Instructions: str("Take at bedtime"), Pharmacy: str("Neudebri Pharmacy")},
	}
	for i, p := range prescriptions {
		p.ID = fmt.Sprintf("rx-%d", i+1)
		p.PatientID = PatientID
		p.DoctorID = DoctorID
		p.StartDate = now.Add(time.Duration(-(90 - i*30)) * 24 * time.Hour).Format(time.RFC3339)
		if err := st.Prescriptions.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedMessages(ctx context.Context, st Stores, now time.Time) error {
	msgs := []*inbox.Message{
		{
			SenderID:   DoctorID,
			ReceiverID: PatientID,
			Subject:    str("Lab Results Available"),
			Content:    "Dear John,\n\nYour recent lab results are now available in your patient portal. Your A1C is slightly elevated at 5.8%. I recommend we discuss dietary adjustments at your next appointment.\n\nBest regards,\nDr. Sarah Smith",
			Priority:   "normal",
		},
		{
			SenderID:   PatientID,
			ReceiverID: DoctorID,
			Subject:    str("Question about medication"),
			Content:    "Dr. Smith,\n\nI've been experiencing some dizziness after taking my blood pressure medication in the morning. Should I be concerned?\n\nThank you,\nJohn",
			Priority:   "high",
			IsRead:     true,
		},
		{
			SenderID:   Doctor2ID,
			ReceiverID: PatientID,
			Subject:    str("Upcoming Virtual Appointment"),
			Content:    "Hello John,\n\nThis is a reminder about your upcoming virtual consultation on cardiology follow-up. Please ensure you have your blood pressure readings from the past week ready to discuss.\n\nSee you soon,\nDr. Michael Johnson",
			Priority:   "normal",
		},
	}
	for i, m := range msgs {
		m.ID = fmt.Sprintf("msg-%d", i+1)
		m.SentAt = now.Add(time.Duration(-i) * 2 * 24 * time.Hour).Format(time.RFC3339)
		if m.IsRead {
			m.ReadAt = str(m.SentAt)
		}
		if err := st.Messages.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func seedFinance(ctx context.Context, st Stores, now time.Time) error {
	insurances := []*finance.InsuranceProvider{
		{ID: "ins-1", Name: "Sanitas Health Insurance", Code: "SAN-001"},
		{ID: "ins-2", Name: "National Health Cover", Code: "NHC-KE"},
	}
	for _, p := range insurances {
		if err := st.Insurances.Create(ctx, p); err != nil {
			return err
		}
	}

	bill := &finance.BillingRecord{
		ID:                  "bill-1",
		PatientID:           PatientID,
		Amount:              12000,
		Currency:            "KES",
		Status:              finance.BillingPending,
		InsuranceProviderID: str("ins-1"),
		InvoiceNumber:       str("INV-1001"),
		CreatedAt:           now.Format(time.RFC3339),
		Description:         str("Wound care consultation and dressing"),
	}
	return st.Billings.Create(ctx, bill)
}

func seedHR(ctx context.Context, st Stores, now time.Time) error {
	nowISO := now.Format(time.RFC3339)
	month := now.Format("2006-01")

	employees := []*hr.EmployeeRecord{
		{
			ID:          "emp-1",
			EmployeeID:  "EMP-001",
			UserID:      str(NurseID),
			FirstName:   "Mary",
			LastName:    "Wanjiku",
			Designation: "Senior Nurse",
			Department:  "Internal Medicine",
			Salary:      85000,
			Currency:    "KES",
			JoinDate:    "2021-03-01",
			Status:      hr.EmployeeActive,
			Email:       str("nurse.mary@neudebri.com"),
			Phone:       str("+254 711 555 666"),
		},
		{
			ID:          "emp-2",
			EmployeeID:  "EMP-002",
			UserID:      str(DoctorID),
			FirstName:   "Sarah",
			LastName:    "Smith",
			Designation: "Consultant Physician",
			Department:  "Internal Medicine",
			Salary:      320000,
			Currency:    "KES",
			JoinDate:    "2018-07-15",
			Status:      hr.EmployeeActive,
			Email:       str("dr.smith@neudebri.com"),
			Phone:       str("+254 722 111 222"),
		},
		{
			ID:          "emp-3",
			EmployeeID:  "EMP-003",
			UserID:      str(Doctor2ID),
			FirstName:   "Michael",
			LastName:    "Johnson",
			Designation: "Cardiologist",
			Department:  "Cardiology",
			Salary:      350000,
			Currency:    "KES",
			JoinDate:    "2019-01-10",
			Status:      hr.EmployeeOnLeave,
			Email:       str("dr.johnson@neudebri.com"),
			Phone:       str("+254 722 333 444"),
		},
	}
	for _, e := range employees {
		e.CreatedAt = nowISO
		e.UpdatedAt = nowISO
		if err := st.Employees.Create(ctx, e); err != nil {
			return err
		}
	}

	attendance := []*hr.AttendanceRecord{
		{ID: "att-1", EmployeeID: "emp-1", Date: now.Add(-1 * 24 * time.Hour).Format("2006-01-02"), CheckIn: str("07:58"), CheckOut: str("17:05"), Status: "present"},
		{ID: "att-2", EmployeeID: "emp-1", Date: now.Add(-2 * 24 * time.Hour).Format("2006-01-02"), CheckIn: str("08:02"), CheckOut: str("17:00"), Status: "present"},
		{ID: "att-3", EmployeeID: "emp-1", Date: now.Add(-3 * 24 * time.Hour).Format("2006-01-02"), Status: "absent", Notes: str("Sick day")},
		{ID: "att-4", EmployeeID: "emp-1", Date: now.Add(-4 * 24 * time.Hour).Format("2006-01-02"), CheckIn: str("09:45"), CheckOut: str("17:30"), Status: "late"},
	}
	for _, a := range attendance {
		a.CreatedAt = nowISO
		if err := st.Attendance.Create(ctx, a); err != nil {
			return err
		}
	}

	leave := &hr.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: "emp-3",
		LeaveType:  "annual",
		StartDate:  now.Add(3 * 24 * time.Hour).Format("2006-01-02"),
		EndDate:    now.Add(10 * 24 * time.Hour).Format("2006-01-02"),
		Reason:     str("Family visit"),
		Status:     "pending",
		CreatedAt:  nowISO,
	}
	if err := st.Leaves.Create(ctx, leave); err != nil {
		return err
	}

	pay := &hr.PayrollRecord{
		ID:          "pay-1",
		EmployeeID:  "emp-1",
		Month:       month,
		BasicSalary: 85000,
		Allowances:  12000,
		Deductions:  9500,
		NetPay:      87500,
		Currency:    "KES",
		Status:      "pending",
		CreatedAt:   nowISO,
	}
	if err := st.Payroll.Create(ctx, pay); err != nil {
		return err
	}

	certs := []*hr.Certification{
		{
			ID:                "cert-1",
			EmployeeID:        "emp-1",
			Name:              "Basic Life Support (BLS)",
			IssuingBody:       str("Kenya Red Cross"),
			IssueDate:         "2023-09-15",
			ExpiryDate:        str(now.Add(20 * 24 * time.Hour).Format("2006-01-02")),
			CertificateNumber: str("BLS-2023-4411"),
		},
		{
			ID:                "cert-2",
			EmployeeID:        "emp-2",
			Name:              "Advanced Cardiac Life Support",
			IssuingBody:       str("American Heart Association"),
			IssueDate:         "2024-02-01",
			ExpiryDate:        str(now.Add(300 * 24 * time.Hour).Format("2006-01-02")),
			CertificateNumber: str("ACLS-2024-0099"),
		},
	}
	for _, c := range certs {
		c.CreatedAt = nowISO
		if err := st.Certs.Create(ctx, c); err != nil {
			return err
		}
	}

	shift := &hr.ShiftSchedule{
		ID:         "shift-1",
		EmployeeID: "emp-1",
		Date:       now.Format("2006-01-02"),
		ShiftType:  "day",
		StartTime:  "08:00",
		EndTime:    "17:00",
		Ward:       str("Ward 3B"),
		CreatedAt:  nowISO,
	}
	if err := st.Shifts.Create(ctx, shift); err != nil {
		return err
	}

	asset := &hr.AssetAllocation{
		ID:            "asset-1",
		EmployeeID:    "emp-2",
		AssetType:     "laptop",
		AssetName:     "ThinkPad T14",
		SerialNumber:  str("LT-2024-0317"),
		AllocatedDate: "2024-03-01",
		Condition:     str("good"),
		CreatedAt:     nowISO,
	}
	return st.Assets.Create(ctx, asset)
}
