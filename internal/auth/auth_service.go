package auth

import (
	"context"
	"os"
	"strings"
	"time"

	autherrors "go-ems/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are valid for a fixed 24 hours; expiry is the only invalidation.
const tokenValidity = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user, tokenValidity)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Token:   token,
		Profile: mapToResponse(user),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     "EMPLOYEE",
		IsActive: true,
	}
	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidUserID
		}
		user.EmployeeID = &eID
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	return mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) generateToken(user *User, expiry time.Duration) (string, error) {
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
	}

	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"employee_id": employeeID,
		"role":        user.Role,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(user *User) AuthResponse {
	resp := AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
	if user.EmployeeID != nil {
		resp.EmployeeID = user.EmployeeID.String()
	}
	return resp
}
