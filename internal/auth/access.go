package auth

import (
	"net/http"

	"podcast-service/internal/domain/user"

	"github.com/labstack/echo/v4"
)

type requirementKind int

const (
	kindPublic requirementKind = iota
	kindAuthenticated
	kindRoles
)

// Requirement declares which callers may invoke an operation: anyone, any
// authenticated identity, or an enumerated set of roles.
type Requirement struct {
	kind  requirementKind
	roles []user.Role
}

func Public() Requirement {
	return Requirement{kind: kindPublic}
}

func Authenticated() Requirement {
	return Requirement{kind: kindAuthenticated}
}

func Roles(roles ...user.Role) Requirement {
	return Requirement{kind: kindRoles, roles: roles}
}

// Allows is the authorization decision procedure. Evaluated in order, first
// match wins; it never fails, it only decides.
func (r Requirement) Allows(caller *user.User) bool {
	if r.kind == kindPublic {
		return true
	}
	if caller == nil {
		return false
	}
	if r.kind == kindAuthenticated {
		return true
	}
	for _, role := range r.roles {
		if caller.Role == role {
			return true
		}
	}
	return false
}

// Policy maps operation names to their role requirements. It is built once
// at route-registration time and read-only afterwards, so concurrent lookups
// need no synchronization.
type Policy struct {
	ops map[string]Requirement
}

func NewPolicy() *Policy {
	return &Policy{ops: make(map[string]Requirement)}
}

func (p *Policy) Register(op string, req Requirement) {
	p.ops[op] = req
}

// Requirement returns the declared requirement for op. Operations that never
// registered one are unrestricted.
func (p *Policy) Requirement(op string) Requirement {
	req, ok := p.ops[op]
	if !ok {
		return Public()
	}
	return req
}

// Handler is an operation that receives the resolved identity as an explicit
// argument. caller is nil for anonymous requests on unrestricted operations.
type Handler func(c echo.Context, caller *user.User) error

// Dispatch wraps an operation with the authorization decision. On deny the
// response is a generic Forbidden with no detail about the cause; on allow
// the handler runs with the resolved identity passed in.
func (p *Policy) Dispatch(op string, h Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, _ := CurrentUser(c)
		if !p.Requirement(op).Allows(caller) {
			return c.JSON(http.StatusForbidden, map[string]any{
				jsonKeyOK:    false,
				jsonKeyError: msgForbidden,
			})
		}
		return h(c, caller)
	}
}
