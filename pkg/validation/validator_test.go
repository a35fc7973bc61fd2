package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"gearguard/internal/dto"
)

func TestValidator_CreateRequest(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		payload dto.CreateRequestDTO
		wantErr bool
	}{
		{
			name:    "минимальный валидный",
			payload: dto.CreateRequestDTO{Subject: "Leaking coolant", Type: "Corrective"},
		},
		{
			name:    "без темы",
			payload: dto.CreateRequestDTO{Type: "Corrective"},
			wantErr: true,
		},
		{
			name:    "неизвестный тип",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Emergency"},
			wantErr: true,
		},
		{
			name:    "неизвестный приоритет",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Corrective", Priority: null.StringFrom("Urgent")},
			wantErr: true,
		},
		{
			name:    "приоритет не прислан",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Corrective"},
		},
		{
			name:    "битая дата",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Corrective", ScheduledDate: null.StringFrom("01/02/2026")},
			wantErr: true,
		},
		{
			name:    "дата в формате ISO",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Corrective", ScheduledDate: null.StringFrom("2026-09-01")},
		},
		{
			name:    "отрицательная длительность",
			payload: dto.CreateRequestDTO{Subject: "x", Type: "Corrective", Duration: null.Float64From(-1)},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.payload)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateRequestStage(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.UpdateRequestStageDTO{Stage: "In Progress"}))
	assert.NoError(t, v.Validate(&dto.UpdateRequestStageDTO{Stage: "Scrap", EquipmentID: null.IntFrom(3)}))
	assert.Error(t, v.Validate(&dto.UpdateRequestStageDTO{Stage: "Done"}), "стадии вне словаря отклоняются")
	assert.Error(t, v.Validate(&dto.UpdateRequestStageDTO{}))
}

func TestValidator_CreateTeam(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.CreateTeamDTO{Name: "Mechanics", Members: []string{"John Doe"}}))
	assert.NoError(t, v.Validate(&dto.CreateTeamDTO{Name: "Mechanics"}), "участники необязательны")
	assert.Error(t, v.Validate(&dto.CreateTeamDTO{}))
}
