package auth

// Record ownership as seen by the visibility rules: who the record is about
// and which clinician it belongs to.
type Owned struct {
	PatientID string
	DoctorID  string
}

// Allows reports whether the viewer may see a record with the given
// ownership. Patients see their own records, doctors and nurses see records
// assigned to them, admins (and any unrecognized role) see everything.
//
// This predicate is the single definition of role scoping; appointments,
// prescriptions and contacts all resolve through it rather than repeating
// the rule per entity.
func (v Viewer) Allows(o Owned) bool {
	switch v.Role {
	case "patient":
		return o.PatientID == v.UserID
	case "doctor", "nurse":
		return o.DoctorID == v.UserID
	default:
		return true
	}
}

// SeesClinicians reports whether the viewer's contact list is the clinician
// roster. Patients message clinicians; every other role messages patients.
func (v Viewer) SeesClinicians() bool {
	return v.Role == "patient"
}
