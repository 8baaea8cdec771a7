package rbac

import (
	"go-ems/internal/domain"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
