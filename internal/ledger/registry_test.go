package ledger

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAdmin_OrderPreserved(t *testing.T) {
	r := newRegistry()
	for i, id := range []uint64{7, 3, 12} {
		got, err := r.registerAdmin(uuid.New(), id, "admin", 40)
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, id, r.adminOrder[i])
	}
	assert.Equal(t, []uint64{7, 3, 12}, r.adminOrder)
}

func TestRegistry_RegisterAdmin_ZeroIDOrAge(t *testing.T) {
	r := newRegistry()
	_, err := r.registerAdmin(uuid.New(), 0, "a", 40)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = r.registerAdmin(uuid.New(), 1, "a", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, r.adminOrder)
}

func TestRegistry_DuplicateID_SameKindOnly(t *testing.T) {
	r := newRegistry()
	_, err := r.registerAdmin(uuid.New(), 1, "a", 40)
	require.NoError(t, err)

	_, err = r.registerAdmin(uuid.New(), 1, "b", 50)
	assert.ErrorIs(t, err, ErrDuplicateID)

	// Kinds are independently namespaced: trainer 1 is fine.
	_, err = r.registerTrainer(uuid.New(), 1, "t", 35, "f")
	assert.NoError(t, err)
	_, err = r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", FirstAid, false)
	assert.NoError(t, err)
}

func TestRegistry_DuplicateIdentity_PerRole(t *testing.T) {
	r := newRegistry()
	identity := uuid.New()

	_, err := r.registerAdmin(identity, 1, "a", 40)
	require.NoError(t, err)
	_, err = r.registerAdmin(identity, 2, "a again", 40)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// The same identity may hold one record of each role.
	_, err = r.registerTrainer(identity, 10, "t", 35, "f")
	assert.NoError(t, err)
	_, err = r.registerParticipant(identity, 100, "p", 20, "m", "north", FoodSafety, false)
	assert.NoError(t, err)
	_, err = r.registerParticipant(identity, 101, "p again", 20, "m", "north", FoodSafety, false)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestRegistry_RegisterParticipant_InvalidInterest(t *testing.T) {
	r := newRegistry()
	_, err := r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", TrainingInterest(3), false)
	assert.ErrorIs(t, err, ErrInvalidInterest)
	_, err = r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", TrainingInterest(-1), false)
	assert.ErrorIs(t, err, ErrInvalidInterest)
}

func TestRegistry_RegisterParticipant_StartingBalance(t *testing.T) {
	r := newRegistry()
	_, err := r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", ShelterRebuild, false)
	require.NoError(t, err)
	assert.Equal(t, InitialParticipantBalance, r.participants[1].Balance)
	assert.Equal(t, 10*BookingFee, r.participants[1].Balance)
}

func TestRegistry_UpdateParticipant(t *testing.T) {
	r := newRegistry()
	_, err := r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", FirstAid, false)
	require.NoError(t, err)

	require.NoError(t, r.updateParticipant(1, FoodSafety, true))
	assert.Equal(t, FoodSafety, r.participants[1].Interest)
	assert.True(t, r.participants[1].HasCompleted)

	// The completion latch is one-way.
	err = r.updateParticipant(1, FirstAid, false)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, FoodSafety, r.participants[1].Interest, "failed update must not change interest")
	assert.True(t, r.participants[1].HasCompleted)

	// Re-asserting true with a new interest is fine.
	require.NoError(t, r.updateParticipant(1, ShelterRebuild, true))
	assert.Equal(t, ShelterRebuild, r.participants[1].Interest)
}

func TestRegistry_UpdateParticipant_NotFound(t *testing.T) {
	r := newRegistry()
	assert.ErrorIs(t, r.updateParticipant(9, FirstAid, false), ErrNotFound)
}

func TestRegistry_UpdateParticipant_InvalidInterest(t *testing.T) {
	r := newRegistry()
	_, err := r.registerParticipant(uuid.New(), 1, "p", 20, "m", "north", FirstAid, false)
	require.NoError(t, err)
	assert.ErrorIs(t, r.updateParticipant(1, TrainingInterest(5), false), ErrInvalidInterest)
}

func TestAuthorize(t *testing.T) {
	r := newRegistry()
	adminIdentity := uuid.New()
	_, err := r.registerAdmin(adminIdentity, 1, "a", 40)
	require.NoError(t, err)

	assert.NoError(t, authorize(RoleAdmin, uuid.Nil, adminIdentity, r))
	assert.ErrorIs(t, authorize(RoleAdmin, uuid.Nil, uuid.New(), r), ErrUnauthorized)

	owner := uuid.New()
	assert.NoError(t, authorize(RoleParticipant, owner, owner, r))
	assert.ErrorIs(t, authorize(RoleParticipant, owner, uuid.New(), r), ErrUnauthorized)
}

func TestCalendar_BookIsTerminal(t *testing.T) {
	c := newCalendar()
	assert.False(t, c.isBooked(10, 5))

	require.NoError(t, c.book(10, 5, 100))
	assert.True(t, c.isBooked(10, 5))

	err := c.book(10, 5, 200)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, uint64(100), c.days[10][5].participant, "occupant must not change")
}

func TestCalendar_FreeSlots(t *testing.T) {
	c := newCalendar()
	free := c.freeSlots(10)
	require.Len(t, free, SlotsPerDay)
	for i, idx := range free {
		assert.Equal(t, i, idx, "free slots must be ascending from 0")
	}

	require.NoError(t, c.book(10, 0, 100))
	require.NoError(t, c.book(10, 47, 100))
	free = c.freeSlots(10)
	assert.Len(t, free, SlotsPerDay-2)
	assert.NotContains(t, free, 0)
	assert.NotContains(t, free, 47)

	// Other trainers' calendars are independent.
	assert.Len(t, c.freeSlots(11), SlotsPerDay)
}

func TestCalendar_ReadsDoNotMaterializeDay(t *testing.T) {
	c := newCalendar()

	// Read paths must stay pure: they run under the ledger's shared read
	// lock, so inserting a day entry here would race concurrent readers.
	assert.False(t, c.isBooked(10, 5))
	assert.Len(t, c.freeSlots(10), SlotsPerDay)
	_, materialized := c.days[10]
	assert.False(t, materialized, "read path inserted a day entry")

	require.NoError(t, c.book(10, 5, 100))
	_, materialized = c.days[10]
	assert.True(t, materialized)
}

func TestParseTrainingInterest(t *testing.T) {
	for name, want := range map[string]TrainingInterest{
		"first_aid":       FirstAid,
		"shelter_rebuild": ShelterRebuild,
		"food_safety":     FoodSafety,
	} {
		got, err := ParseTrainingInterest(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseTrainingInterest("basket_weaving")
	assert.True(t, errors.Is(err, ErrInvalidInterest))
}
