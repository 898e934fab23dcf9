package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// registry stores all actor records keyed by id and enforces id and
// per-role identity uniqueness. It is not synchronized; the owning Ledger
// serializes access.
type registry struct {
	admins       map[uint64]*Admin
	trainers     map[uint64]*Trainer
	participants map[uint64]*Participant

	// One registration per identity per role; the three roles are
	// independently namespaced.
	adminIdentities       map[uuid.UUID]uint64
	trainerIdentities     map[uuid.UUID]uint64
	participantIdentities map[uuid.UUID]uint64

	// adminOrder is append-only, in registration order. It is the selection
	// domain for fee distribution: the first-registered admin occupies
	// index 0.
	adminOrder []uint64
}

func newRegistry() *registry {
	return &registry{
		admins:                make(map[uint64]*Admin),
		trainers:              make(map[uint64]*Trainer),
		participants:          make(map[uint64]*Participant),
		adminIdentities:       make(map[uuid.UUID]uint64),
		trainerIdentities:     make(map[uuid.UUID]uint64),
		participantIdentities: make(map[uuid.UUID]uint64),
	}
}

// registerAdmin validates and stores a new admin record and appends its id
// to the selection order.
//
// Precondition: none; all inputs are validated here.
// Postcondition: On success the admin is retrievable by id and occupies the
// last index of adminOrder. On error no state changes.
func (r *registry) registerAdmin(identity uuid.UUID, id uint64, name string, age uint) (uint64, error) {
	if id == 0 || age == 0 {
		return 0, fmt.Errorf("admin id %d age %d: %w", id, age, ErrInvalidArgument)
	}
	if _, exists := r.admins[id]; exists {
		return 0, fmt.Errorf("admin %d: %w", id, ErrDuplicateID)
	}
	if prev, exists := r.adminIdentities[identity]; exists {
		return 0, fmt.Errorf("identity already holds admin %d: %w", prev, ErrDuplicateIdentity)
	}

	r.admins[id] = &Admin{ID: id, Name: name, Age: age, Identity: identity}
	r.adminIdentities[identity] = id
	r.adminOrder = append(r.adminOrder, id)
	return id, nil
}

// registerTrainer validates and stores a new trainer record.
func (r *registry) registerTrainer(identity uuid.UUID, id uint64, name string, age uint, gender string) (uint64, error) {
	if id == 0 || age == 0 {
		return 0, fmt.Errorf("trainer id %d age %d: %w", id, age, ErrInvalidArgument)
	}
	if _, exists := r.trainers[id]; exists {
		return 0, fmt.Errorf("trainer %d: %w", id, ErrDuplicateID)
	}
	if prev, exists := r.trainerIdentities[identity]; exists {
		return 0, fmt.Errorf("identity already holds trainer %d: %w", prev, ErrDuplicateIdentity)
	}

	r.trainers[id] = &Trainer{ID: id, Name: name, Age: age, Gender: gender, Identity: identity}
	r.trainerIdentities[identity] = id
	return id, nil
}

// registerParticipant validates and stores a new participant record with the
// fixed starting balance.
func (r *registry) registerParticipant(identity uuid.UUID, id uint64, name string, age uint, gender, district string, interest TrainingInterest, hasCompleted bool) (uint64, error) {
	if id == 0 || age == 0 {
		return 0, fmt.Errorf("participant id %d age %d: %w", id, age, ErrInvalidArgument)
	}
	if !interest.Valid() {
		return 0, fmt.Errorf("interest %d: %w", interest, ErrInvalidInterest)
	}
	if _, exists := r.participants[id]; exists {
		return 0, fmt.Errorf("participant %d: %w", id, ErrDuplicateID)
	}
	if prev, exists := r.participantIdentities[identity]; exists {
		return 0, fmt.Errorf("identity already holds participant %d: %w", prev, ErrDuplicateIdentity)
	}

	r.participants[id] = &Participant{
		ID:           id,
		Name:         name,
		Age:          age,
		Gender:       gender,
		District:     district,
		Interest:     interest,
		HasCompleted: hasCompleted,
		Balance:      InitialParticipantBalance,
		Identity:     identity,
	}
	r.participantIdentities[identity] = id
	return id, nil
}

// updateParticipant overwrites the interest and completion fields.
//
// Postcondition: HasCompleted is monotonic non-decreasing across any
// sequence of updates; attempts to clear it fail with ErrIllegalTransition
// and leave the record untouched.
func (r *registry) updateParticipant(id uint64, interest TrainingInterest, hasCompleted bool) error {
	p, exists := r.participants[id]
	if !exists {
		return fmt.Errorf("participant %d: %w", id, ErrNotFound)
	}
	if !interest.Valid() {
		return fmt.Errorf("interest %d: %w", interest, ErrInvalidInterest)
	}
	if p.HasCompleted && !hasCompleted {
		return fmt.Errorf("participant %d already completed training: %w", id, ErrIllegalTransition)
	}
	p.Interest = interest
	p.HasCompleted = hasCompleted
	return nil
}

// isAdminIdentity reports whether the identity is registered as an admin.
func (r *registry) isAdminIdentity(identity uuid.UUID) bool {
	_, ok := r.adminIdentities[identity]
	return ok
}
