package admin

type Department struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	HeadDoctorID *string `json:"headDoctorId"`
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	IsActive     bool    `json:"isActive"`
}

type DepartmentInput struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	HeadDoctorID *string `json:"headDoctorId"`
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	IsActive     *bool   `json:"isActive"`
}
