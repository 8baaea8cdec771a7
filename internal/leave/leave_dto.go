package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=Casual Sick Earned Unpaid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Status          string  `json:"status" binding:"required,oneof=Approved Rejected"`
	RejectionReason *string `json:"rejection_reason"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
