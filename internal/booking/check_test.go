package booking

import (
	"testing"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 int
		want           bool
	}{
		{"disjoint before", 0, 60, 120, 180, false},
		{"disjoint after", 120, 180, 0, 60, false},
		{"adjacent end-to-start", 540, 600, 600, 660, false},
		{"adjacent start-to-end", 600, 660, 540, 600, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"contained", 540, 720, 600, 660, true},
		{"identical", 540, 600, 540, 600, true},
		{"one minute shared", 540, 601, 600, 660, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.a0, tt.a1, tt.b0, tt.b1)
			assert.Equal(t, tt.want, got)
			// Overlap is symmetric.
			assert.Equal(t, got, Overlaps(tt.b0, tt.b1, tt.a0, tt.a1))
		})
	}
}

func TestCheckInterval_TimedConflict(t *testing.T) {
	occ, diags := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-01", "09:00", "10:00", "APPROVED"),
	})
	require.Empty(t, diags)

	// 10:00-11:00 touches only the shared boundary.
	res := occ.CheckInterval("A", "2025-06-01", 600, 660)
	assert.True(t, res.OK)

	// 09:30-10:30 overlaps.
	res = occ.CheckInterval("A", "2025-06-01", 570, 630)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "09:00-10:00")
}

func TestCheckInterval_FullDayVeto(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		{HallName: "A", StartDate: "2025-06-01", EndDate: "2025-06-03", Status: "APPROVED"},
	})
	assert.Equal(t, DayFull, occ.DayStatus("2025-06-02", "A"))

	res := occ.CheckInterval("A", "2025-06-02", 540, 600)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "fully booked")
}

func TestCheckInterval_OtherHallDoesNotConflict(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-01", "09:00", "10:00", "APPROVED"),
	})
	res := occ.CheckInterval("B", "2025-06-01", 570, 630)
	assert.True(t, res.OK)
}

func TestCheckInterval_HallCaseInsensitive(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("Main Hall", "2025-06-01", "09:00", "10:00", "APPROVED"),
	})
	res := occ.CheckInterval("main hall", "2025-06-01", 570, 630)
	assert.False(t, res.OK)
}

func TestCheckInterval_Preconditions(t *testing.T) {
	occ := Occupancy{}
	tests := []struct {
		name               string
		hall, date         string
		startMin, endMin   int
		wantMsg            string
	}{
		{"missing hall", "", "2025-06-01", 540, 600, "select a hall"},
		{"missing date", "A", "", 540, 600, "pick a date"},
		{"bad date", "A", "06/01/2025", 540, 600, "YYYY-MM-DD"},
		{"negative start", "A", "2025-06-01", -10, 600, "single day"},
		{"end past midnight", "A", "2025-06-01", 540, 1500, "single day"},
		{"inverted", "A", "2025-06-01", 600, 540, "after start"},
		{"empty interval", "A", "2025-06-01", 600, 600, "after start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := occ.CheckInterval(tt.hall, tt.date, tt.startMin, tt.endMin)
			assert.False(t, res.OK)
			assert.Contains(t, res.Message, tt.wantMsg)
		})
	}
}

func TestCheckRange_AllOrNothing(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-02", "09:00", "10:00", "APPROVED"),
	})

	// A plain date takes the whole day, so even a timed booking blocks it.
	res := occ.CheckRange("A", "2025-06-01", "2025-06-03", nil, AdminWindow)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "2025-06-02")
	assert.NotContains(t, res.Message, "2025-06-01")

	res = occ.CheckRange("A", "2025-06-03", "2025-06-05", nil, AdminWindow)
	assert.True(t, res.OK)
}

func TestCheckRange_OverridesCheckedAsIntervals(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-02", "09:00", "10:00", "APPROVED"),
	})

	overrides := map[string]*domain.DaySlot{
		"2025-06-02": {StartTime: "11:00", EndTime: "12:00"},
	}
	res := occ.CheckRange("A", "2025-06-02", "2025-06-02", overrides, AdminWindow)
	assert.True(t, res.OK)

	overrides["2025-06-02"] = &domain.DaySlot{StartTime: "09:30", EndTime: "10:30"}
	res = occ.CheckRange("A", "2025-06-02", "2025-06-02", overrides, AdminWindow)
	require.False(t, res.OK)
	// A one-hour alternative exists inside the admin window.
	assert.Equal(t, "2025-06-02 06:00-07:00", res.Suggestion)
}

func TestCheckRange_CollectsAllConflicts(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-01", "09:00", "10:00", "APPROVED"),
		timedSeminar("A", "2025-06-03", "09:00", "10:00", "APPROVED"),
	})
	res := occ.CheckRange("A", "2025-06-01", "2025-06-03", nil, AdminWindow)
	require.False(t, res.OK)
	assert.Contains(t, res.Message, "2025-06-01")
	assert.Contains(t, res.Message, "2025-06-03")
	assert.NotContains(t, res.Message, "2025-06-02")
}

func TestCheckRange_BadDates(t *testing.T) {
	occ := Occupancy{}

	res := occ.CheckRange("A", "bogus", "2025-06-03", nil, AdminWindow)
	assert.False(t, res.OK)

	res = occ.CheckRange("A", "2025-06-03", "2025-06-01", nil, AdminWindow)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "end date")
}

func TestSuggestSlot(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-01", "08:00", "12:00", "APPROVED"),
	})

	start, found := occ.SuggestSlot("A", "2025-06-01", 60, DepartmentWindow)
	require.True(t, found)
	assert.Equal(t, 12*60, start)

	// The suggested slot actually checks out.
	res := occ.CheckInterval("A", "2025-06-01", start, start+60)
	assert.True(t, res.OK)
}

func TestSuggestSlot_NoRoom(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		timedSeminar("A", "2025-06-01", "08:00", "17:30", "APPROVED"),
	})
	_, found := occ.SuggestSlot("A", "2025-06-01", 60, DepartmentWindow)
	assert.False(t, found)
}

func TestSuggestSlot_FullDayBlocked(t *testing.T) {
	occ, _ := Normalize([]*domain.Seminar{
		{HallName: "A", Date: "2025-06-01", Status: "APPROVED"},
	})
	_, found := occ.SuggestSlot("A", "2025-06-01", 60, AdminWindow)
	assert.False(t, found)
}

func TestSuggestSlot_DurationExceedsWindow(t *testing.T) {
	occ := Occupancy{}
	_, found := occ.SuggestSlot("A", "2025-06-01", 16*60, DepartmentWindow)
	assert.False(t, found)
}

func TestWindowForRole(t *testing.T) {
	assert.Equal(t, AdminWindow, WindowForRole(domain.RoleAdmin))
	assert.Equal(t, DepartmentWindow, WindowForRole(domain.RoleDepartment))
	assert.Equal(t, DepartmentWindow, WindowForRole("unknown"))
}
