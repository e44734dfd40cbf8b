package auth

import "testing"

func TestAllows(t *testing.T) {
	owned := Owned{PatientID: "patient-001", DoctorID: "doctor-001"}

	cases := []struct {
		name   string
		viewer Viewer
		want   bool
	}{
		{"patient owns record", Viewer{UserID: "patient-001", Role: "patient"}, true},
		{"other patient", Viewer{UserID: "patient-002", Role: "patient"}, false},
		{"assigned doctor", Viewer{UserID: "doctor-001", Role: "doctor"}, true},
		{"other doctor", Viewer{UserID: "doctor-002", Role: "doctor"}, false},
		{"nurse scoped like doctor", Viewer{UserID: "doctor-001", Role: "nurse"}, true},
		{"admin sees everything", Viewer{UserID: "admin-001", Role: "admin"}, true},
		{"unknown role unfiltered", Viewer{UserID: "x", Role: "auditor"}, true},
	}
	for _, c := range cases {
		if got := c.viewer.Allows(owned); got != c.want {
			t.Errorf("%s: Allows = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSeesClinicians(t *testing.T) {
	if !(Viewer{Role: "patient"}).SeesClinicians() {
		t.Error("patient should see the clinician roster")
	}
	if (Viewer{Role: "doctor"}).SeesClinicians() {
		t.Error("doctor should see patients, not clinicians")
	}
}
