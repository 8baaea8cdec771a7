package designation

type CreateDesignationRequest struct {
	Title        string `json:"title" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

type UpdateDesignationRequest struct {
	Title        string `json:"title" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

type DesignationResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
