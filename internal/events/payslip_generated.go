package events

import "time"

const PayslipGeneratedTopic = "ems.payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PayslipID   string    `json:"payslip_id"`
	EmployeeID  string    `json:"employee_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
