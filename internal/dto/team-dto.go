package dto

import "github.com/aarondl/null/v8"

type CreateTeamDTO struct {
	Name    string      `json:"name" validate:"required"`
	Color   null.String `json:"color" validate:"omitempty"`
	Members []string    `json:"members"`
}

// UpdateTeamDTO - полная замена: список участников удаляется и
// вставляется заново, пустой список стирает всех участников.
type UpdateTeamDTO struct {
	Name    string      `json:"name" validate:"required"`
	Color   null.String `json:"color" validate:"omitempty"`
	Members []string    `json:"members"`
}

type TeamDTO struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Members []string `json:"members"`

	ActiveRequestsCount *int64 `json:"active_requests_count,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
