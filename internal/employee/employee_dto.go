package employee

type CreateEmployeeRequest struct {
	FullName           string `json:"full_name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Gender             string `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth        string `json:"date_of_birth" binding:"required"`
	State              string `json:"state" binding:"required"`
	DepartmentID       string `json:"department_id"`
	DesignationID      string `json:"designation_id"`
	ReportingManagerID string `json:"reporting_manager_id"`
	DateOfJoining      string `json:"date_of_joining" binding:"required"`
	WorkMode           string `json:"work_mode" binding:"omitempty,oneof=Office Remote Hybrid"`
	EmployeeNumber     string `json:"employee_number"`
	Avatar             *string `json:"avatar"`
}

// UpdateEmployeeRequest lists exactly the mutable fields. Nil means "leave as
// is"; an empty string on a reference field means "unset the reference".
type UpdateEmployeeRequest struct {
	FullName           *string `json:"full_name"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Gender             *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth        *string `json:"date_of_birth"`
	State              *string `json:"state"`
	DepartmentID       *string `json:"department_id"`
	DesignationID      *string `json:"designation_id"`
	ReportingManagerID *string `json:"reporting_manager_id"`
	DateOfJoining      *string `json:"date_of_joining"`
	WorkMode           *string `json:"work_mode" binding:"omitempty,oneof=Office Remote Hybrid"`
	IsActive           *bool   `json:"is_active"`
	Avatar             *string `json:"avatar"`
}

type EmployeeResponse struct {
	ID                 string  `json:"id"`
	EmployeeNumber     string  `json:"employee_number"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Gender             string  `json:"gender"`
	DateOfBirth        string  `json:"date_of_birth"`
	State              string  `json:"state"`
	DepartmentID       string  `json:"department_id,omitempty"`
	DesignationID      string  `json:"designation_id,omitempty"`
	ReportingManagerID string  `json:"reporting_manager_id,omitempty"`
	DateOfJoining      string  `json:"date_of_joining"`
	WorkMode           string  `json:"work_mode"`
	IsActive           bool    `json:"is_active"`
	Status             string  `json:"status"`
	Avatar             *string `json:"avatar,omitempty"`

	Department       *RefResponse `json:"department,omitempty"`
	Designation      *RefResponse `json:"designation,omitempty"`
	ReportingManager *RefResponse `json:"reporting_manager,omitempty"`
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
