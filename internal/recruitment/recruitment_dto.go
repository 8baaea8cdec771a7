package recruitment

type CreateJobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Department         string   `json:"department"`
	Location           string   `json:"location"`
	JobType            string   `json:"job_type" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	RemotePolicy       string   `json:"remote_policy" binding:"omitempty,oneof=Onsite Hybrid Remote"`
	ExperienceLevel    string   `json:"experience_level"`
	Skills             []string `json:"skills"`
	SalaryRange        string   `json:"salary_range"`
	ScreeningQuestions []string `json:"screening_questions"`
	Status             string   `json:"status" binding:"omitempty,oneof=Open Closed Draft"`
}

type AddCandidateRequest struct {
	JobID            string   `json:"job_id" binding:"required,uuid"`
	FullName         string   `json:"full_name" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone"`
	Skills           []string `json:"skills"`
	ScreeningAnswers []string `json:"screening_answers"`
	ExperienceYears  float64  `json:"experience_years" binding:"gte=0"`
}

type UpdateCandidateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=New Screening Interview Offer Hired Rejected"`
}

type ScheduleInterviewRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
	Notes    string `json:"notes"`
}

type JobResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Department         string   `json:"department,omitempty"`
	Location           string   `json:"location,omitempty"`
	JobType            string   `json:"job_type"`
	RemotePolicy       string   `json:"remote_policy,omitempty"`
	ExperienceLevel    string   `json:"experience_level,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	SalaryRange        string   `json:"salary_range,omitempty"`
	ScreeningQuestions []string `json:"screening_questions,omitempty"`
	Status             string   `json:"status"`
	CreatedAt          string   `json:"created_at"`
}

type CandidateResponse struct {
	ID               string   `json:"id"`
	JobID            string   `json:"job_id"`
	JobTitle         string   `json:"job_title,omitempty"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	ScreeningAnswers []string `json:"screening_answers,omitempty"`
	ExperienceYears  float64  `json:"experience_years"`
	AIScore          *float64 `json:"ai_score,omitempty"`
	Status           string   `json:"status"`
	CreatedAt        string   `json:"created_at"`
}
