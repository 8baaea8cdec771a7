package recruitment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-ems/internal/notification"
	recruitmenterrors "go-ems/internal/recruitment/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// nextStage holds the single forward transition per pipeline stage.
// Rejected is reachable from any non-terminal stage.
var nextStage = map[string]string{
	StageNew:       StageScreening,
	StageScreening: StageInterview,
	StageInterview: StageOffer,
	StageOffer:     StageHired,
}

const interviewMailFrom = "recruitment@go-ems.local"

//go:generate mockgen -source=recruitment_service.go -destination=mock/recruitment_service_mock.go -package=mock
type Service interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJobs(ctx context.Context) ([]JobResponse, error)
	GetOpenJobs(ctx context.Context) ([]JobResponse, error)
	AddCandidate(ctx context.Context, req AddCandidateRequest) (CandidateResponse, error)
	Apply(ctx context.Context, req AddCandidateRequest) (CandidateResponse, error)
	GetCandidates(ctx context.Context) ([]CandidateResponse, error)
	UpdateCandidateStatus(ctx context.Context, id string, req UpdateCandidateStatusRequest) (CandidateResponse, error)
	ScheduleInterview(ctx context.Context, id string, req ScheduleInterviewRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	mailer notification.Mailer
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, mailer notification.Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("recruitment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recruitment.service")
	}
	return &service{db: db, repo: repo, mailer: mailer, logger: l}
}

func (s *service) CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	status := req.Status
	if status == "" {
		status = JobStatusOpen
	}
	jobType := req.JobType
	if jobType == "" {
		jobType = "Full-time"
	}

	job := &Job{
		ID:                 uuid.New(),
		Title:              req.Title,
		Department:         req.Department,
		Location:           req.Location,
		JobType:            jobType,
		RemotePolicy:       req.RemotePolicy,
		ExperienceLevel:    req.ExperienceLevel,
		Skills:             req.Skills,
		SalaryRange:        req.SalaryRange,
		ScreeningQuestions: req.ScreeningQuestions,
		Status:             status,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		s.logger.Error("create job failed", zap.String("title", req.Title), zap.Error(err))
		return JobResponse{}, err
	}

	return mapJobToResponse(*job), nil
}

func (s *service) GetJobs(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAllJobs(ctx)
	if err != nil {
		return nil, err
	}
	return mapJobsToResponse(jobs), nil
}

// GetOpenJobs backs the unauthenticated careers listing.
func (s *service) GetOpenJobs(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindJobsByStatus(ctx, JobStatusOpen)
	if err != nil {
		return nil, err
	}
	return mapJobsToResponse(jobs), nil
}

func (s *service) AddCandidate(ctx context.Context, req AddCandidateRequest) (CandidateResponse, error) {
	return s.addCandidate(ctx, req, false)
}

// Apply is the public application path. Unlike AddCandidate it refuses
// jobs that are not open.
func (s *service) Apply(ctx context.Context, req AddCandidateRequest) (CandidateResponse, error) {
	return s.addCandidate(ctx, req, true)
}

func (s *service) addCandidate(ctx context.Context, req AddCandidateRequest, requireOpen bool) (CandidateResponse, error) {
	jobUUID, err := uuid.Parse(req.JobID)
	if err != nil {
		return CandidateResponse{}, recruitmenterrors.ErrInvalidJobID
	}

	job, err := s.repo.FindJobByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CandidateResponse{}, recruitmenterrors.ErrJobNotFound
		}
		return CandidateResponse{}, err
	}
	if requireOpen && job.Status != JobStatusOpen {
		return CandidateResponse{}, recruitmenterrors.ErrJobNotOpen
	}

	candidate := &Candidate{
		ID:               uuid.New(),
		JobID:            jobUUID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Skills:           req.Skills,
		ScreeningAnswers: req.ScreeningAnswers,
		ExperienceYears:  req.ExperienceYears,
		Status:           StageNew,
	}

	if err := s.repo.CreateCandidate(ctx, candidate); err != nil {
		s.logger.Error("create candidate failed",
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		return CandidateResponse{}, err
	}

	candidate.Job = job
	return mapCandidateToResponse(*candidate), nil
}

func (s *service) GetCandidates(ctx context.Context) ([]CandidateResponse, error) {
	candidates, err := s.repo.FindAllCandidates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, mapCandidateToResponse(c))
	}
	return out, nil
}

func (s *service) UpdateCandidateStatus(ctx context.Context, id string, req UpdateCandidateStatusRequest) (CandidateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CandidateResponse{}, recruitmenterrors.ErrInvalidCandidateID
	}

	candidate, err := s.repo.FindCandidateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CandidateResponse{}, recruitmenterrors.ErrCandidateNotFound
		}
		return CandidateResponse{}, err
	}

	if candidate.Status == StageHired || candidate.Status == StageRejected {
		return CandidateResponse{}, recruitmenterrors.ErrCandidateTerminal
	}
	if req.Status != StageRejected && req.Status != nextStage[candidate.Status] {
		return CandidateResponse{}, recruitmenterrors.ErrInvalidStageTransition
	}

	candidate.Status = req.Status
	if err := s.repo.UpdateCandidate(ctx, candidate); err != nil {
		return CandidateResponse{}, err
	}

	s.logger.Info("candidate stage updated",
		zap.String("candidate_id", id),
		zap.String("status", req.Status),
	)

	return mapCandidateToResponse(*candidate), nil
}

// ScheduleInterview dispatches the invitation email. The candidate's stage
// is left untouched; a failed send is logged and swallowed.
func (s *service) ScheduleInterview(ctx context.Context, id string, req ScheduleInterviewRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return recruitmenterrors.ErrInvalidCandidateID
	}

	candidate, err := s.repo.FindCandidateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recruitmenterrors.ErrCandidateNotFound
		}
		return err
	}

	jobTitle := "the open position"
	if candidate.Job != nil {
		jobTitle = candidate.Job.Title
	}

	subject := fmt.Sprintf("Interview scheduled: %s", jobTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour interview for %s has been scheduled.\n\nDate: %s\nTime: %s\nLocation: %s\n",
		candidate.FullName, jobTitle, req.Date, req.Time, req.Location,
	)
	if req.Notes != "" {
		body += "\nNotes: " + req.Notes + "\n"
	}

	if err := s.mailer.Send(ctx, interviewMailFrom, candidate.Email, subject, body); err != nil {
		s.logger.Warn("interview mail dispatch failed",
			zap.String("candidate_id", id),
			zap.Error(err),
		)
	}

	return nil
}

func mapJobToResponse(j Job) JobResponse {
	return JobResponse{
		ID:                 j.ID.String(),
		Title:              j.Title,
		Department:         j.Department,
		Location:           j.Location,
		JobType:            j.JobType,
		RemotePolicy:       j.RemotePolicy,
		ExperienceLevel:    j.ExperienceLevel,
		Skills:             j.Skills,
		SalaryRange:        j.SalaryRange,
		ScreeningQuestions: j.ScreeningQuestions,
		Status:             j.Status,
		CreatedAt:          j.CreatedAt.Format(time.RFC3339),
	}
}

func mapJobsToResponse(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, mapJobToResponse(j))
	}
	return out
}

func mapCandidateToResponse(c Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:               c.ID.String(),
		JobID:            c.JobID.String(),
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		Skills:           c.Skills,
		ScreeningAnswers: c.ScreeningAnswers,
		ExperienceYears:  c.ExperienceYears,
		AIScore:          c.AIScore,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
	if c.Job != nil {
		resp.JobTitle = c.Job.Title
	}
	return resp
}
