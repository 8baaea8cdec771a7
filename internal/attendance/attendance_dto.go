package attendance

type PunchInRequest struct {
	WorkMode string `json:"work_mode" binding:"omitempty,oneof=Office Remote Hybrid"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	PunchIn        string  `json:"punch_in"`
	PunchOut       *string `json:"punch_out"`
	TotalHours     float64 `json:"total_hours"`
	WorkMode       string  `json:"work_mode"`
	Status         string  `json:"status"`
}
