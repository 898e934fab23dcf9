package ledger

import "errors"

// ErrInvalidArgument indicates a malformed input such as a zero id or zero age.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidInterest indicates a training interest outside the recognized set.
var ErrInvalidInterest = errors.New("invalid training interest")

// ErrDuplicateID indicates the id is already held by an entity of the same kind.
var ErrDuplicateID = errors.New("id already registered")

// ErrDuplicateIdentity indicates the caller identity already registered that role.
var ErrDuplicateIdentity = errors.New("identity already registered for role")

// ErrNotFound indicates a reference to an unknown admin, trainer, or participant.
var ErrNotFound = errors.New("not found")

// ErrIllegalTransition indicates an attempt to clear a completed-training latch.
var ErrIllegalTransition = errors.New("illegal transition")

// ErrInsufficientBalance indicates the participant cannot cover the booking fee.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrNoAdminsAvailable indicates no admin is registered to receive the fee.
var ErrNoAdminsAvailable = errors.New("no admins available")

// ErrInvalidSlot indicates a slot index outside [0, SlotsPerDay).
var ErrInvalidSlot = errors.New("invalid slot index")

// ErrAlreadyBooked indicates the slot is already occupied.
var ErrAlreadyBooked = errors.New("slot already booked")

// ErrUnauthorized indicates the caller identity does not match the required
// role or record owner.
var ErrUnauthorized = errors.New("unauthorized")
