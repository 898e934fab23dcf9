package ledger_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/PranjalBasak/446-Project-1/internal/ledger"
)

func TestSlotTimeRange(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "0:00-0:30"},
		{1, "0:30-1:00"},
		{2, "1:00-1:30"},
		{5, "2:30-3:00"},
		{19, "9:30-10:00"},
		{20, "10:00-10:30"},
		{46, "23:00-23:30"},
		{47, "23:30-24:00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ledger.SlotTimeRange(tc.index), "slot %d", tc.index)
	}
}

func TestSlotTimeRange_Property_WellFormed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		index := rapid.IntRange(0, ledger.SlotsPerDay-1).Draw(rt, "index")
		got := ledger.SlotTimeRange(index)

		var sh, sm, eh, em int
		_, err := fmt.Sscanf(got, "%d:%d-%d:%d", &sh, &sm, &eh, &em)
		if err != nil {
			rt.Fatalf("slot %d rendered %q: %v", index, got, err)
		}
		assert.Equal(rt, index/2, sh)
		assert.Equal(rt, (index%2)*30, sm)
		// The interval is exactly 30 minutes with hour carry.
		assert.Equal(rt, sh*60+sm+30, eh*60+em)
		assert.Contains(rt, []int{0, 30}, sm)
		assert.Contains(rt, []int{0, 30}, em)
	})
}
