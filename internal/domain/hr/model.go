package hr

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeOnLeave    EmployeeStatus = "on_leave"
	EmployeeTerminated EmployeeStatus = "terminated"
)

// EmployeeRecord is the HR file for a staff member. It may link back to a
// portal user via userId but stands on its own.
type EmployeeRecord struct {
	ID          string         `json:"id"`
	EmployeeID  string         `json:"employeeId"`
	UserID      *string        `json:"userId"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Designation string         `json:"designation"`
	Department  string         `json:"department"`
	Salary      float64        `json:"salary"`
	Currency    string         `json:"currency"`
	JoinDate    string         `json:"joinDate"`
	Status      EmployeeStatus `json:"status"`
	Email       *string        `json:"email"`
	Phone       *string        `json:"phone"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// EmployeeUpdate carries a partial update; nil fields are left untouched.
type EmployeeUpdate struct {
	EmployeeID  *string         `json:"employeeId"`
	UserID      *string         `json:"userId"`
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	Designation *string         `json:"designation"`
	Department  *string         `json:"department"`
	Salary      *float64        `json:"salary"`
	Currency    *string         `json:"currency"`
	JoinDate    *string         `json:"joinDate"`
	Status      *EmployeeStatus `json:"status"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
}

type AttendanceRecord struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"createdAt"`
}

type LeaveRequest struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	LeaveType    string  `json:"leaveType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approvedBy"`
	ApprovalDate *string `json:"approvalDate"`
	CreatedAt    string  `json:"createdAt"`
}

type PayrollRecord struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basicSalary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetPay      float64 `json:"netPay"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type PerformanceReview struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	ReviewerID   *string `json:"reviewerId"`
	ReviewPeriod string  `json:"reviewPeriod"`
	Rating       *int    `json:"rating"`
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Goals        *string `json:"goals"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

type ShiftSchedule struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	ShiftType  string  `json:"shiftType"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Ward       *string `json:"ward"`
	CreatedAt  string  `json:"createdAt"`
}

type Certification struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	Name              string  `json:"name"`
	IssuingBody       *string `json:"issuingBody"`
	IssueDate         string  `json:"issueDate"`
	ExpiryDate        *string `json:"expiryDate"`
	CertificateNumber *string `json:"certificateNumber"`
	CreatedAt         string  `json:"createdAt"`
}

type AssetAllocation struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	AssetType     string  `json:"assetType"`
	AssetName     string  `json:"assetName"`
	SerialNumber  *string `json:"serialNumber"`
	AllocatedDate string  `json:"allocatedDate"`
	ReturnDate    *string `json:"returnDate"`
	Condition     *string `json:"condition"`
	CreatedAt     string  `json:"createdAt"`
}

// Stats is the HR dashboard aggregate.
type Stats struct {
	TotalEmployees         int            `json:"totalEmployees"`
	ActiveEmployees        int            `json:"activeEmployees"`
	OnLeaveCount           int            `json:"onLeaveCount"`
	AbsenceRate            float64        `json:"absenceRate"`
	DepartmentBreakdown    map[string]int `json:"departmentBreakdown"`
	UpcomingLeaveRequests  int            `json:"upcomingLeaveRequests"`
	PendingPayroll         int            `json:"pendingPayroll"`
	CertificationsExpiring int            `json:"certificationsExpiring"`
}
