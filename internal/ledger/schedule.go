package ledger

import "fmt"

// SlotTimeRange renders the half-hour interval covered by the slot index as
// "H:MM-H:MM". Hours carry no leading zero; minutes are always "00" or "30".
// Slot 0 is "0:00-0:30", slot 5 is "2:30-3:00", slot 47 is "23:30-24:00".
//
// Precondition: index must be in [0, SlotsPerDay).
func SlotTimeRange(index int) string {
	startHour := index / 2
	startMin := (index % 2) * 30

	endHour := startHour
	endMin := startMin + 30
	if endMin == 60 {
		endHour++
		endMin = 0
	}

	return fmt.Sprintf("%d:%02d-%d:%02d", startHour, startMin, endHour, endMin)
}
