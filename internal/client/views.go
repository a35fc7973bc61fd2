package client

import (
	"strings"
	"time"

	"gearguard/pkg/constants"
)

// Чистые производные от коллекций стора. Никаких запросов к серверу,
// только то, что уже загружено.

// DashboardStats - четыре карточки в шапке дашборда.
type DashboardStats struct {
	TotalEquipment  int
	ActiveRequests  int
	OverdueRequests int
	TeamsCount      int
}

func BuildDashboardStats(equipment []EquipmentRecord, requests []RequestRecord, teams []TeamRecord, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalEquipment: len(equipment),
		TeamsCount:     len(teams),
	}
	for _, r := range requests {
		if constants.IsTerminalStage(r.Stage) {
			continue
		}
		stats.ActiveRequests++
		if isOverdue(r.ScheduledDate, now) {
			stats.OverdueRequests++
		}
	}
	return stats
}

// TeamLoad - строка диаграммы "заявки по командам". Share нормирован
// к самой загруженной команде, чтобы полоса не делилась на ноль.
type TeamLoad struct {
	Name  string
	Color string
	Count int
	Share float64
}

func BuildTeamLoads(teams []TeamRecord, requests []RequestRecord) []TeamLoad {
	loads := make([]TeamLoad, 0, len(teams))
	maxCount := 1
	for _, team := range teams {
		count := 0
		for _, r := range requests {
			if r.TeamID != nil && *r.TeamID == team.ID {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
		}
		loads = append(loads, TeamLoad{Name: team.Name, Color: team.Color, Count: count})
	}
	for i := range loads {
		loads[i].Share = float64(loads[i].Count) / float64(maxCount)
	}
	return loads
}

// RecentActivity - лента последних заявок, максимум limit штук в
// порядке загрузки (сервер отдаёт их новыми вперёд).
func RecentActivity(requests []RequestRecord, limit int) []RequestRecord {
	if len(requests) <= limit {
		return requests
	}
	return requests[:limit]
}

// KanbanBoard группирует заявки по четырём стадиям с учётом поиска по
// теме (без регистра) и фильтра по команде.
func KanbanBoard(requests []RequestRecord, search string, teamFilter *ID) map[string][]RequestRecord {
	board := make(map[string][]RequestRecord, len(constants.AllStages))
	for _, stage := range constants.AllStages {
		board[stage] = []RequestRecord{}
	}

	needle := strings.ToLower(search)
	for _, r := range requests {
		if _, ok := board[r.Stage]; !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Subject), needle) {
			continue
		}
		if teamFilter != nil && (r.TeamID == nil || *r.TeamID != *teamFilter) {
			continue
		}
		board[r.Stage] = append(board[r.Stage], r)
	}
	return board
}

// PreventiveSchedule - календарь профилактики: только заявки типа
// Preventive, в порядке загрузки.
func PreventiveSchedule(requests []RequestRecord) []RequestRecord {
	scheduled := make([]RequestRecord, 0)
	for _, r := range requests {
		if r.Type == constants.TypePreventive {
			scheduled = append(scheduled, r)
		}
	}
	return scheduled
}

func isOverdue(scheduledDate *string, now time.Time) bool {
	if scheduledDate == nil || *scheduledDate == "" {
		return false
	}
	date, err := time.Parse("2006-01-02", *scheduledDate)
	if err != nil {
		return false
	}
	return date.Before(now)
}
