package payroll

type SaveStructureRequest struct {
	EmployeeID       string  `json:"employee_id" binding:"required,uuid"`
	Basic            float64 `json:"basic" binding:"required,gte=0"`
	HRA              float64 `json:"hra" binding:"gte=0"`
	DA               float64 `json:"da" binding:"gte=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"gte=0"`
	PF               float64 `json:"pf" binding:"gte=0"`
	Tax              float64 `json:"tax" binding:"gte=0"`
}

type GeneratePayslipRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=2000,max=2100"`
	LossOfPay  float64 `json:"loss_of_pay" binding:"gte=0"`
}

type UpdatePayslipStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Draft Published Paid"`
}

type StructureResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	DA               float64 `json:"da"`
	SpecialAllowance float64 `json:"special_allowance"`
	PF               float64 `json:"pf"`
	Tax              float64 `json:"tax"`
	Gross            float64 `json:"gross"`
	Net              float64 `json:"net"`
}

type PayslipResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	DA               float64 `json:"da"`
	SpecialAllowance float64 `json:"special_allowance"`
	PF               float64 `json:"pf"`
	Tax              float64 `json:"tax"`
	LossOfPay        float64 `json:"loss_of_pay"`
	TotalEarnings    float64 `json:"total_earnings"`
	TotalDeductions  float64 `json:"total_deductions"`
	NetPay           float64 `json:"net_pay"`
	Status           string  `json:"status"`
	PayslipURL       *string `json:"payslip_url,omitempty"`
}
