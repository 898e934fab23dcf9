// Package ledger implements the registry-and-booking core for the
// disaster-recovery training program: actor registration, the per-trainer
// slot calendar, the fee-settlement booking engine, and read-only
// projections. All state is held in memory and owned by a Ledger.
package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Amount is a monetary value in the smallest fee unit.
type Amount = int64

const (
	// FeeUnit is the number of smallest units in one display unit.
	FeeUnit Amount = 1_000_000_000
	// BookingFee is debited from the participant and credited to the
	// selected admin on every successful booking.
	BookingFee Amount = 1 * FeeUnit
	// InitialParticipantBalance is granted at participant registration.
	// The fee-to-initial-balance ratio is fixed at 1:10.
	InitialParticipantBalance Amount = 10 * FeeUnit
)

// TrainingInterest is the participant's chosen training track.
type TrainingInterest int

const (
	FirstAid TrainingInterest = iota
	ShelterRebuild
	FoodSafety
)

// Valid reports whether i is one of the recognized training tracks.
func (i TrainingInterest) Valid() bool {
	return i >= FirstAid && i <= FoodSafety
}

// String returns the track name, or "unknown" for out-of-range values.
func (i TrainingInterest) String() string {
	switch i {
	case FirstAid:
		return "first_aid"
	case ShelterRebuild:
		return "shelter_rebuild"
	case FoodSafety:
		return "food_safety"
	default:
		return "unknown"
	}
}

// ParseTrainingInterest maps a track name to its TrainingInterest code.
//
// Postcondition: Returns ErrInvalidInterest for unrecognized names.
func ParseTrainingInterest(s string) (TrainingInterest, error) {
	switch s {
	case "first_aid":
		return FirstAid, nil
	case "shelter_rebuild":
		return ShelterRebuild, nil
	case "food_safety":
		return FoodSafety, nil
	default:
		return 0, fmt.Errorf("training interest %q: %w", s, ErrInvalidInterest)
	}
}

// Admin is a program administrator. Balance is mutated only by the booking
// engine (credit); the record is never destroyed.
type Admin struct {
	ID       uint64
	Name     string
	Age      uint
	Balance  Amount
	Identity uuid.UUID
}

// Trainer is immutable after registration; its calendar is held by the
// calendar store.
type Trainer struct {
	ID       uint64
	Name     string
	Age      uint
	Gender   string
	Identity uuid.UUID
}

// Participant is a trainee. Balance only ever decreases, via booking fees.
// HasCompleted is a one-way latch: once true it cannot be reset.
type Participant struct {
	ID           uint64
	Name         string
	Age          uint
	Gender       string
	District     string
	Interest     TrainingInterest
	HasCompleted bool
	Balance      Amount
	Identity     uuid.UUID
}
