package domain

import "fmt"

// Role is the closed set of account roles. Anything outside it (including
// an absent profile) must be treated as unauthorized, never defaulted.
type Role string

const (
	RoleAnnotator Role = "annotator"
	RoleAdmin     Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAnnotator:
		return RoleAnnotator, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

func (r Role) String() string { return string(r) }
