package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	Subject       string       `json:"subject" validate:"required"`
	EquipmentID   null.Int     `json:"equipment_id" validate:"omitempty,gt=0"`
	TeamID        null.Int     `json:"team_id" validate:"omitempty,gt=0"`
	Type          string       `json:"type" validate:"required,request_type"`
	Priority      null.String  `json:"priority" validate:"omitempty,priority"`
	ScheduledDate null.String  `json:"scheduled_date" validate:"omitempty,date_format"`
	AssignedTo    null.String  `json:"assigned_to" validate:"omitempty"`
	Duration      null.Float64 `json:"duration" validate:"omitempty,gte=0"`
	Description   null.String  `json:"description" validate:"omitempty"`
}

// UpdateRequestDTO - полная замена всех полей, включая стадию.
type UpdateRequestDTO struct {
	Subject       string       `json:"subject" validate:"required"`
	EquipmentID   null.Int     `json:"equipment_id" validate:"omitempty,gt=0"`
	TeamID        null.Int     `json:"team_id" validate:"omitempty,gt=0"`
	Type          string       `json:"type" validate:"required,request_type"`
	Stage         string       `json:"stage" validate:"required,stage"`
	Priority      string       `json:"priority" validate:"required,priority"`
	ScheduledDate null.String  `json:"scheduled_date" validate:"omitempty,date_format"`
	AssignedTo    null.String  `json:"assigned_to" validate:"omitempty"`
	Duration      null.Float64 `json:"duration" validate:"omitempty,gte=0"`
	Description   null.String  `json:"description" validate:"omitempty"`
}

// UpdateRequestStageDTO - смена только стадии (перетаскивание на доске).
type UpdateRequestStageDTO struct {
	Stage       string   `json:"stage" validate:"required,stage"`
	EquipmentID null.Int `json:"equipment_id" validate:"omitempty,gt=0"`
}

type RequestDTO struct {
	ID            uint64      `json:"id"`
	Subject       string      `json:"subject"`
	EquipmentID   null.Int    `json:"equipment_id"`
	TeamID        null.Int    `json:"team_id"`
	Type          string      `json:"type"`
	Stage         string      `json:"stage"`
	Priority      string      `json:"priority"`
	ScheduledDate *string     `json:"scheduled_date"`
	AssignedTo    null.String `json:"assigned_to"`
	Duration      float64     `json:"duration"`
	Description   null.String `json:"description"`

	// Поля из JOIN-ов (только на путях чтения)
	EquipmentName   *string `json:"equipment_name,omitempty"`
	EquipmentSerial *string `json:"equipment_serial,omitempty"`
	TeamName        *string `json:"team_name,omitempty"`
	TeamColor       *string `json:"team_color,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RequestFilter - параметры списка заявок.
type RequestFilter struct {
	Stage       string
	TeamID      uint64
	EquipmentID uint64
	Type        string
	Search      string
}
