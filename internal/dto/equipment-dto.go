package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required"`
	SerialNumber null.String `json:"serial_number" validate:"omitempty"`
	Department   null.String `json:"department" validate:"omitempty"`
	Category     null.String `json:"category" validate:"omitempty"`
	Location     null.String `json:"location" validate:"omitempty"`
	AssignedTo   null.String `json:"assigned_to" validate:"omitempty"`
	PurchaseDate null.String `json:"purchase_date" validate:"omitempty,date_format"`
	WarrantyDate null.String `json:"warranty_date" validate:"omitempty,date_format"`
	TeamID       null.Int    `json:"team_id" validate:"omitempty,gt=0"`
}

// UpdateEquipmentDTO - полная замена всех полей по id.
type UpdateEquipmentDTO struct {
	Name         string      `json:"name" validate:"required"`
	SerialNumber null.String `json:"serial_number" validate:"omitempty"`
	Department   null.String `json:"department" validate:"omitempty"`
	Category     null.String `json:"category" validate:"omitempty"`
	Location     null.String `json:"location" validate:"omitempty"`
	AssignedTo   null.String `json:"assigned_to" validate:"omitempty"`
	PurchaseDate null.String `json:"purchase_date" validate:"omitempty,date_format"`
	WarrantyDate null.String `json:"warranty_date" validate:"omitempty,date_format"`
	TeamID       null.Int    `json:"team_id" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber null.String `json:"serial_number"`
	Department   null.String `json:"department"`
	Category     null.String `json:"category"`
	Location     null.String `json:"location"`
	AssignedTo   null.String `json:"assigned_to"`
	PurchaseDate *string     `json:"purchase_date"`
	WarrantyDate *string     `json:"warranty_date"`
	TeamID       null.Int    `json:"team_id"`
	IsScrapped   bool        `json:"is_scrapped"`

	// Поля из JOIN-ов (только на путях чтения)
	TeamName          *string `json:"team_name,omitempty"`
	TeamColor         *string `json:"team_color,omitempty"`
	OpenRequestsCount *int64  `json:"open_requests_count,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EquipmentFilter - параметры списка оборудования.
type EquipmentFilter struct {
	Department string
	AssignedTo string
	Search     string
}
