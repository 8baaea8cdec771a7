package auth

type RegisterRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Profile AuthResponse `json:"profile"`
}
