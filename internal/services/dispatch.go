package services

import (
	"errors"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

// ErrUnauthorized reports an authenticated account whose role grants
// access to neither workflow.
var ErrUnauthorized = errors.New("account role grants no workflow access")

// Workflow is the capability an account is routed into after login. The
// two concrete implementations cover everything a client needs to open
// the right surface; there is no string comparison past this point.
type Workflow interface {
	Role() types.Role
	Name() string
	Landing() string
}

type annotatorWorkflow struct{}

func (annotatorWorkflow) Role() types.Role { return types.RoleAnnotator }
func (annotatorWorkflow) Name() string     { return "annotation" }
func (annotatorWorkflow) Landing() string  { return "/annotate" }

type adminWorkflow struct{}

func (adminWorkflow) Role() types.Role { return types.RoleAdmin }
func (adminWorkflow) Name() string     { return "admin-dashboard" }
func (adminWorkflow) Landing() string  { return "/admin" }

// RoleRouter dispatches a resolved role to its workflow. Routing happens
// once per login; it is not re-evaluated mid-session.
type RoleRouter struct {
	workflows map[types.Role]Workflow
}

func NewRoleRouter() *RoleRouter {
	return &RoleRouter{
		workflows: map[types.Role]Workflow{
			types.RoleAnnotator: annotatorWorkflow{},
			types.RoleAdmin:     adminWorkflow{},
		},
	}
}

func (r *RoleRouter) Route(role types.Role) (Workflow, error) {
	wf, ok := r.workflows[role]
	if !ok {
		return nil, ErrUnauthorized
	}
	return wf, nil
}
