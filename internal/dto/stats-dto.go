package dto

// RequestStatsDTO - сводная статистика по всей таблице заявок.
type RequestStatsDTO struct {
	ActiveRequests     int64 `json:"active_requests"`
	NewRequests        int64 `json:"new_requests"`
	InProgressRequests int64 `json:"in_progress_requests"`
	RepairedRequests   int64 `json:"repaired_requests"`
	OverdueRequests    int64 `json:"overdue_requests"`
}
