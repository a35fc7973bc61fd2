package client

import (
	"encoding/json"
	"strings"
)

// ID принимает и числовые идентификаторы сервера, и строковые
// локальные вида "local-<uuid>".
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON отдаёт числовые идентификаторы числом, сервер ждёт
// именно number в полях вроде team_id.
func (id ID) MarshalJSON() ([]byte, error) {
	if id != "" && !id.IsLocal() {
		if _, err := json.Number(id).Int64(); err == nil {
			return []byte(id), nil
		}
	}
	return json.Marshal(string(id))
}

// IsLocal сообщает, что запись создана оффлайн и на сервере её нет.
func (id ID) IsLocal() bool {
	return strings.HasPrefix(string(id), "local-")
}

type EquipmentRecord struct {
	ID           ID      `json:"id"`
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Department   string  `json:"department"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	AssignedTo   string  `json:"assigned_to"`
	PurchaseDate *string `json:"purchase_date"`
	WarrantyDate *string `json:"warranty_date"`
	TeamID       *ID     `json:"team_id"`
	TeamName     string  `json:"team_name,omitempty"`
	TeamColor    string  `json:"team_color,omitempty"`
	IsScrapped   bool    `json:"is_scrapped"`
}

type TeamRecord struct {
	ID      ID       `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Members []string `json:"members"`
}

type RequestRecord struct {
	ID            ID      `json:"id"`
	Subject       string  `json:"subject"`
	EquipmentID   *ID     `json:"equipment_id"`
	TeamID        *ID     `json:"team_id"`
	Type          string  `json:"type"`
	Stage         string  `json:"stage"`
	Priority      string  `json:"priority"`
	ScheduledDate *string `json:"scheduled_date"`
	AssignedTo    string  `json:"assigned_to"`
	Duration      float64 `json:"duration"`
	Description   string  `json:"description"`
	EquipmentName string  `json:"equipment_name,omitempty"`
	TeamName      string  `json:"team_name,omitempty"`
	TeamColor     string  `json:"team_color,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// EquipmentInput - данные формы создания оборудования.
type EquipmentInput struct {
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number,omitempty"`
	Department   string  `json:"department,omitempty"`
	Category     string  `json:"category,omitempty"`
	Location     string  `json:"location,omitempty"`
	AssignedTo   string  `json:"assigned_to,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	WarrantyDate *string `json:"warranty_date,omitempty"`
	TeamID       *ID     `json:"team_id,omitempty"`
}

// TeamInput - данные формы создания команды.
type TeamInput struct {
	Name    string   `json:"name"`
	Color   string   `json:"color,omitempty"`
	Members []string `json:"members"`
}

// RequestInput - данные формы создания заявки.
type RequestInput struct {
	Subject       string  `json:"subject"`
	EquipmentID   *ID     `json:"equipment_id,omitempty"`
	TeamID        *ID     `json:"team_id,omitempty"`
	Type          string  `json:"type"`
	Priority      string  `json:"priority,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	AssignedTo    string  `json:"assigned_to,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	Description   string  `json:"description,omitempty"`
}
