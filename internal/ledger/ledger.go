package ledger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger owns the authoritative in-memory state: the actor registry, the
// per-trainer calendars, and all balances. Every mutating operation runs to
// completion under one exclusive lock, so no observer ever sees a booking's
// slot-marked-but-fee-not-transferred intermediate state. Read-only queries
// share a read lock and observe a consistent snapshot.
//
// All methods are safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	reg      *registry
	cal      *calendar
	selector *Selector
	logger   *zap.Logger
}

// New creates an empty Ledger.
//
// Precondition: selector and logger must be non-nil.
func New(selector *Selector, logger *zap.Logger) *Ledger {
	return &Ledger{
		reg:      newRegistry(),
		cal:      newCalendar(),
		selector: selector,
		logger:   logger,
	}
}

// RegisterAdmin registers caller as an admin with the chosen id.
//
// Postcondition: On success the returned id equals the requested id and the
// admin occupies the next index of the fee-selection order.
func (l *Ledger) RegisterAdmin(caller uuid.UUID, id uint64, name string, age uint) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	registered, err := l.reg.registerAdmin(caller, id, name, age)
	if err != nil {
		return 0, err
	}
	l.logger.Info("admin registered",
		zap.Uint64("admin_id", registered),
		zap.Int("selection_index", len(l.reg.adminOrder)-1),
	)
	return registered, nil
}

// RegisterTrainer registers caller as a trainer with the chosen id. The
// trainer's 48-slot calendar starts fully free.
func (l *Ledger) RegisterTrainer(caller uuid.UUID, id uint64, name string, age uint, gender string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	registered, err := l.reg.registerTrainer(caller, id, name, age, gender)
	if err != nil {
		return 0, err
	}
	l.logger.Info("trainer registered", zap.Uint64("trainer_id", registered))
	return registered, nil
}

// RegisterParticipant registers caller as a participant with the chosen id
// and the fixed starting balance.
func (l *Ledger) RegisterParticipant(caller uuid.UUID, id uint64, name string, age uint, gender, district string, interest TrainingInterest, hasCompleted bool) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	registered, err := l.reg.registerParticipant(caller, id, name, age, gender, district, interest, hasCompleted)
	if err != nil {
		return 0, err
	}
	l.logger.Info("participant registered",
		zap.Uint64("participant_id", registered),
		zap.Stringer("interest", interest),
	)
	return registered, nil
}

// UpdateParticipant overwrites a participant's training interest and
// completion flag. Restricted to callers holding the admin role.
//
// Postcondition: The completion flag never transitions true to false;
// such requests fail with ErrIllegalTransition and change nothing.
func (l *Ledger) UpdateParticipant(caller uuid.UUID, participantID uint64, interest TrainingInterest, hasCompleted bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := authorize(RoleAdmin, uuid.Nil, caller, l.reg); err != nil {
		return err
	}
	if err := l.reg.updateParticipant(participantID, interest, hasCompleted); err != nil {
		return err
	}
	l.logger.Info("participant updated",
		zap.Uint64("participant_id", participantID),
		zap.Stringer("interest", interest),
		zap.Bool("has_completed", hasCompleted),
	)
	return nil
}

// BookSlot reserves a trainer's slot for the participant and settles the
// fee: the participant is debited and a pseudo-randomly selected admin is
// credited. Restricted to the caller owning the participant record.
//
// Validation order (first failure wins, no partial effects): trainer
// exists, participant exists, caller owns the record, balance covers the
// fee, at least one admin is registered, slot index in range, slot free.
//
// Postcondition: On success the slot is terminally booked and exactly
// BookingFee moved from the participant to the selected admin. On error all
// state is unchanged.
func (l *Ledger) BookSlot(caller uuid.UUID, trainerID, participantID uint64, slotIndex int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.reg.trainers[trainerID]; !exists {
		return fmt.Errorf("trainer %d: %w", trainerID, ErrNotFound)
	}
	p, exists := l.reg.participants[participantID]
	if !exists {
		return fmt.Errorf("participant %d: %w", participantID, ErrNotFound)
	}
	if err := authorize(RoleParticipant, p.Identity, caller, l.reg); err != nil {
		return err
	}
	if p.Balance < BookingFee {
		return fmt.Errorf("participant %d balance %d below fee %d: %w", participantID, p.Balance, BookingFee, ErrInsufficientBalance)
	}
	if len(l.reg.adminOrder) == 0 {
		return ErrNoAdminsAvailable
	}
	if slotIndex < 0 || slotIndex >= SlotsPerDay {
		return fmt.Errorf("slot %d outside [0,%d): %w", slotIndex, SlotsPerDay, ErrInvalidSlot)
	}
	if l.cal.isBooked(trainerID, slotIndex) {
		return fmt.Errorf("trainer %d slot %d: %w", trainerID, slotIndex, ErrAlreadyBooked)
	}

	// All checks passed; the remaining steps cannot fail, so the mutation
	// below is applied as a unit under the held lock.
	adminID, err := l.selector.Pick(l.reg.adminOrder, participantID)
	if err != nil {
		return err
	}
	if err := l.cal.book(trainerID, slotIndex, participantID); err != nil {
		return err
	}
	p.Balance -= BookingFee
	l.reg.admins[adminID].Balance += BookingFee

	l.logger.Info("slot booked",
		zap.Uint64("trainer_id", trainerID),
		zap.Uint64("participant_id", participantID),
		zap.Int("slot_index", slotIndex),
		zap.String("slot_time", SlotTimeRange(slotIndex)),
		zap.Uint64("credited_admin_id", adminID),
		zap.Int64("fee", BookingFee),
	)
	return nil
}

// AdminBalances returns parallel slices of admin ids in registration order
// and their balances in display units (integer division by FeeUnit,
// fractional remainder truncated).
func (l *Ledger) AdminBalances() (ids []uint64, balances []Amount) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids = make([]uint64, len(l.reg.adminOrder))
	balances = make([]Amount, len(l.reg.adminOrder))
	for i, id := range l.reg.adminOrder {
		ids[i] = id
		balances[i] = l.reg.admins[id].Balance / FeeUnit
	}
	return ids, balances
}

// Participant returns a copy of the participant record.
//
// Postcondition: Returns ErrNotFound if no participant holds the id.
func (l *Ledger) Participant(participantID uint64) (Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, exists := l.reg.participants[participantID]
	if !exists {
		return Participant{}, fmt.Errorf("participant %d: %w", participantID, ErrNotFound)
	}
	return *p, nil
}

// TrainerSchedule returns the trainer's free slot indices in ascending
// order and the matching human-readable time ranges.
//
// Postcondition: Returns ErrNotFound if no trainer holds the id. Booked
// slots never appear; len(indices) plus the booked count equals SlotsPerDay.
func (l *Ledger) TrainerSchedule(trainerID uint64) (indices []int, ranges []string, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, exists := l.reg.trainers[trainerID]; !exists {
		return nil, nil, fmt.Errorf("trainer %d: %w", trainerID, ErrNotFound)
	}

	indices = l.cal.freeSlots(trainerID)
	ranges = make([]string, len(indices))
	for i, idx := range indices {
		ranges[i] = SlotTimeRange(idx)
	}
	return indices, ranges, nil
}
