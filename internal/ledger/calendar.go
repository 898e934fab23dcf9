package ledger

import "fmt"

// SlotsPerDay is the number of fixed 30-minute intervals in the recurring
// daily calendar.
const SlotsPerDay = 48

// slot holds the state of one calendar interval. A slot transitions
// free to booked exactly once; there is no transition back.
type slot struct {
	booked      bool
	participant uint64
}

// calendar tracks one 48-slot day per trainer. A trainer with no entry has
// an all-free day; the entry is materialized only by book, so the read
// methods never write and are safe under the owning Ledger's shared read
// lock. The calendar itself is not synchronized.
type calendar struct {
	days map[uint64]*[SlotsPerDay]slot
}

func newCalendar() *calendar {
	return &calendar{days: make(map[uint64]*[SlotsPerDay]slot)}
}

// isBooked reports whether the slot is occupied. Read-only.
//
// Precondition: index must be in [0, SlotsPerDay).
func (c *calendar) isBooked(trainerID uint64, index int) bool {
	d, ok := c.days[trainerID]
	if !ok {
		return false
	}
	return d[index].booked
}

// book transitions the slot from free to booked, recording the occupying
// participant.
//
// Precondition: index must be in [0, SlotsPerDay).
// Postcondition: On success the slot is terminally booked; a second call
// for the same (trainerID, index) fails with ErrAlreadyBooked.
func (c *calendar) book(trainerID uint64, index int, participantID uint64) error {
	d, ok := c.days[trainerID]
	if !ok {
		d = &[SlotsPerDay]slot{}
		c.days[trainerID] = d
	}
	if d[index].booked {
		return fmt.Errorf("trainer %d slot %d: %w", trainerID, index, ErrAlreadyBooked)
	}
	d[index] = slot{booked: true, participant: participantID}
	return nil
}

// freeSlots returns the free slot indices for the trainer in ascending
// order. Read-only.
func (c *calendar) freeSlots(trainerID uint64) []int {
	free := make([]int, 0, SlotsPerDay)
	d, ok := c.days[trainerID]
	if !ok {
		for i := 0; i < SlotsPerDay; i++ {
			free = append(free, i)
		}
		return free
	}
	for i := range d {
		if !d[i].booked {
			free = append(free, i)
		}
	}
	return free
}
