package performance

type CreateAppraisalRequest struct {
	Cycle      string             `json:"cycle" binding:"required"`
	ReviewerID string             `json:"reviewer_id" binding:"omitempty,uuid"`
	KPIs       []KPIGoalRequest   `json:"kpis" binding:"required,min=1,dive"`
}

type KPIGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateAppraisalRequest struct {
	Status string             `json:"status" binding:"omitempty,oneof=GoalSetting SelfReview ManagerReview Completed"`
	KPIs   []KPIUpdateRequest `json:"kpis" binding:"omitempty,dive"`
}

type KPIUpdateRequest struct {
	ID             string  `json:"id" binding:"required,uuid"`
	SelfRating     *int    `json:"self_rating" binding:"omitempty,min=1,max=5"`
	SelfComment    *string `json:"self_comment"`
	ManagerRating  *int    `json:"manager_rating" binding:"omitempty,min=1,max=5"`
	ManagerComment *string `json:"manager_comment"`
}

type AppraisalResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name,omitempty"`
	ReviewerID   string        `json:"reviewer_id,omitempty"`
	ReviewerName string        `json:"reviewer_name,omitempty"`
	Cycle        string        `json:"cycle"`
	Status       string        `json:"status"`
	FinalRating  *float64      `json:"final_rating,omitempty"`
	KPIs         []KPIResponse `json:"kpis"`
}

type KPIResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	SelfRating     *int    `json:"self_rating,omitempty"`
	SelfComment    *string `json:"self_comment,omitempty"`
	ManagerRating  *int    `json:"manager_rating,omitempty"`
	ManagerComment *string `json:"manager_comment,omitempty"`
}
