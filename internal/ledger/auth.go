package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Role identifies one of the three independently namespaced actor roles.
type Role int

const (
	RoleAdmin Role = iota
	RoleTrainer
	RoleParticipant
)

// String returns the role name for log and error output.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTrainer:
		return "trainer"
	case RoleParticipant:
		return "participant"
	default:
		return "unknown"
	}
}

// authorize checks the caller identity against the required role, decoupled
// from the transport that supplied it. RoleAdmin is a membership check: any
// registered admin may act, and ownerIdentity is ignored. RoleTrainer and
// RoleParticipant are ownership checks: the caller must be the record owner.
//
// Postcondition: Returns nil when authorized, or an error wrapping
// ErrUnauthorized.
func authorize(role Role, ownerIdentity, callerIdentity uuid.UUID, reg *registry) error {
	switch role {
	case RoleAdmin:
		if !reg.isAdminIdentity(callerIdentity) {
			return fmt.Errorf("%s role required: %w", role, ErrUnauthorized)
		}
	default:
		if ownerIdentity != callerIdentity {
			return fmt.Errorf("caller does not own the %s record: %w", role, ErrUnauthorized)
		}
	}
	return nil
}
