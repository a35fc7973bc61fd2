package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func idPtr(id ID) *ID         { return &id }

func testRequests() []RequestRecord {
	return []RequestRecord{
		{ID: "5", Subject: "Leaking coolant", Stage: "New", Type: "Corrective", TeamID: idPtr("1"), ScheduledDate: strPtr("2020-01-01")},
		{ID: "4", Subject: "Spindle vibration", Stage: "In Progress", Type: "Corrective", TeamID: idPtr("1")},
		{ID: "3", Subject: "Monthly lubrication", Stage: "New", Type: "Preventive", TeamID: idPtr("2"), ScheduledDate: strPtr("2099-01-01")},
		{ID: "2", Subject: "Broken fan", Stage: "Repaired", Type: "Corrective", TeamID: idPtr("2"), ScheduledDate: strPtr("2020-01-01")},
		{ID: "1", Subject: "Worn out press", Stage: "Scrap", Type: "Corrective"},
	}
}

func TestBuildDashboardStats(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	stats := BuildDashboardStats(
		[]EquipmentRecord{{ID: "1"}, {ID: "2"}},
		testRequests(),
		[]TeamRecord{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		now,
	)

	assert.Equal(t, 2, stats.TotalEquipment)
	assert.Equal(t, 3, stats.TeamsCount)
	assert.Equal(t, 3, stats.ActiveRequests, "Repaired и Scrap не активны")
	assert.Equal(t, 1, stats.OverdueRequests, "просрочены только нетерминальные с датой в прошлом")
}

func TestBuildTeamLoads(t *testing.T) {
	teams := []TeamRecord{
		{ID: "1", Name: "Mechanics", Color: "#3b82f6"},
		{ID: "2", Name: "Electricians", Color: "#f59e0b"},
		{ID: "3", Name: "Facilities", Color: "#ef4444"},
	}

	loads := BuildTeamLoads(teams, testRequests())
	assert.Len(t, loads, 3)
	assert.Equal(t, 2, loads[0].Count)
	assert.Equal(t, 2, loads[1].Count)
	assert.Equal(t, 0, loads[2].Count)
	assert.Equal(t, 1.0, loads[0].Share)
	assert.Equal(t, 0.0, loads[2].Share)
}

func TestBuildTeamLoads_NoRequests(t *testing.T) {
	loads := BuildTeamLoads([]TeamRecord{{ID: "1", Name: "Mechanics"}}, nil)
	assert.Equal(t, 0.0, loads[0].Share, "деления на ноль быть не должно")
}

func TestRecentActivity(t *testing.T) {
	requests := testRequests()
	assert.Len(t, RecentActivity(requests, 5), 5)
	assert.Equal(t, ID("5"), RecentActivity(requests, 3)[0].ID, "порядок загрузки сохраняется")
	assert.Len(t, RecentActivity(requests[:2], 5), 2)
}

func TestKanbanBoard_GroupsByStage(t *testing.T) {
	board := KanbanBoard(testRequests(), "", nil)

	assert.Len(t, board, 4)
	assert.Len(t, board["New"], 2)
	assert.Len(t, board["In Progress"], 1)
	assert.Len(t, board["Repaired"], 1)
	assert.Len(t, board["Scrap"], 1)
}

func TestKanbanBoard_SearchIsCaseInsensitive(t *testing.T) {
	board := KanbanBoard(testRequests(), "LEAKING", nil)

	assert.Len(t, board["New"], 1)
	assert.Equal(t, "Leaking coolant", board["New"][0].Subject)
	assert.Empty(t, board["In Progress"])
}

func TestKanbanBoard_TeamFilter(t *testing.T) {
	board := KanbanBoard(testRequests(), "", idPtr("2"))

	assert.Len(t, board["New"], 1)
	assert.Len(t, board["Repaired"], 1)
	assert.Empty(t, board["In Progress"])
	assert.Empty(t, board["Scrap"], "заявка без команды не проходит фильтр")
}

func TestPreventiveSchedule(t *testing.T) {
	scheduled := PreventiveSchedule(testRequests())

	assert.Len(t, scheduled, 1)
	assert.Equal(t, "Monthly lubrication", scheduled[0].Subject)
}
