package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

// --- Фейки ---

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeRequestRepo struct {
	repositories.RequestRepositoryInterface

	insertedTeamID null.Int
	stageUpdates   []string
	stored         dto.RequestDTO
}

func (f *fakeRequestRepo) InsertRequest(ctx context.Context, q repositories.Querier, d dto.CreateRequestDTO, teamID null.Int) (*dto.RequestDTO, error) {
	f.insertedTeamID = teamID
	f.stored = dto.RequestDTO{ID: 1, Subject: d.Subject, Stage: "New", TeamID: teamID, EquipmentID: d.EquipmentID}
	return &f.stored, nil
}

func (f *fakeRequestRepo) UpdateRequest(ctx context.Context, id uint64, d dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	f.stored = dto.RequestDTO{ID: id, Subject: d.Subject, Stage: d.Stage, TeamID: d.TeamID, EquipmentID: d.EquipmentID}
	return &f.stored, nil
}

func (f *fakeRequestRepo) UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error) {
	f.stageUpdates = append(f.stageUpdates, stage)
	f.stored.Stage = stage
	return &f.stored, nil
}

type fakeEquipmentRepo struct {
	repositories.EquipmentRepositoryInterface

	teamID    null.Int
	scrapped  []uint64
	teamAsked bool
}

func (f *fakeEquipmentRepo) GetTeamID(ctx context.Context, q repositories.Querier, id uint64) (null.Int, error) {
	f.teamAsked = true
	return f.teamID, nil
}

func (f *fakeEquipmentRepo) MarkScrapped(ctx context.Context, id uint64) error {
	f.scrapped = append(f.scrapped, id)
	return nil
}

func newRequestService(reqRepo *fakeRequestRepo, eqRepo *fakeEquipmentRepo) *RequestService {
	return NewRequestService(reqRepo, eqRepo, nil, &fakeTxManager{}, 30*time.Second, zap.NewNop())
}

// --- Тесты ---

func TestCreateRequest_AutofillTeamFromEquipment(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{teamID: null.IntFrom(7)}
	svc := newRequestService(reqRepo, eqRepo)

	created, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Leaking coolant",
		EquipmentID: null.IntFrom(3),
		Type:        "Corrective",
	})
	require.NoError(t, err)

	assert.True(t, eqRepo.teamAsked, "команда должна читаться из оборудования")
	assert.Equal(t, null.IntFrom(7), reqRepo.insertedTeamID)
	assert.Equal(t, null.IntFrom(7), created.TeamID)
}

func TestCreateRequest_ExplicitTeamWins(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{teamID: null.IntFrom(7)}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Scheduled check",
		EquipmentID: null.IntFrom(3),
		TeamID:      null.IntFrom(2),
		Type:        "Preventive",
	})
	require.NoError(t, err)

	assert.False(t, eqRepo.teamAsked, "явная команда не перетирается командой оборудования")
	assert.Equal(t, null.IntFrom(2), reqRepo.insertedTeamID)
}

func TestCreateRequest_NoEquipmentNoTeam(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{teamID: null.IntFrom(7)}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject: "General inspection",
		Type:    "Preventive",
	})
	require.NoError(t, err)

	assert.False(t, eqRepo.teamAsked)
	assert.False(t, reqRepo.insertedTeamID.Valid)
}

func TestUpdateRequest_ScrapMarksEquipment(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{}
	svc := newRequestService(reqRepo, eqRepo)

	updated, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Subject:     "Spindle beyond repair",
		EquipmentID: null.IntFrom(4),
		Type:        "Corrective",
		Stage:       "Scrap",
		Priority:    "High",
	})
	require.NoError(t, err)

	assert.Equal(t, "Scrap", updated.Stage)
	assert.Equal(t, []uint64{4}, eqRepo.scrapped,
		"полное обновление со стадией Scrap тоже списывает оборудование")
}

func TestUpdateRequest_NonScrapDoesNotMark(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Subject:     "Spindle vibration",
		EquipmentID: null.IntFrom(4),
		Type:        "Corrective",
		Stage:       "In Progress",
		Priority:    "High",
	})
	require.NoError(t, err)

	assert.Empty(t, eqRepo.scrapped)
}

func TestUpdateRequestStage_ScrapMarksEquipment(t *testing.T) {
	reqRepo := &fakeRequestRepo{}
	eqRepo := &fakeEquipmentRepo{}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.UpdateRequestStage(context.Background(), 1, dto.UpdateRequestStageDTO{
		Stage:       "Scrap",
		EquipmentID: null.IntFrom(3),
	})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3}, eqRepo.scrapped)
}

func TestUpdateRequestStage_ScrapFallsBackToRequestEquipment(t *testing.T) {
	reqRepo := &fakeRequestRepo{stored: dto.RequestDTO{ID: 1, EquipmentID: null.IntFrom(9)}}
	eqRepo := &fakeEquipmentRepo{}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.UpdateRequestStage(context.Background(), 1, dto.UpdateRequestStageDTO{Stage: "Scrap"})
	require.NoError(t, err)

	assert.Equal(t, []uint64{9}, eqRepo.scrapped,
		"без equipment_id в запросе берётся оборудование самой заявки")
}

func TestUpdateRequestStage_RepairedDoesNotUnscrap(t *testing.T) {
	reqRepo := &fakeRequestRepo{stored: dto.RequestDTO{ID: 1, EquipmentID: null.IntFrom(9)}}
	eqRepo := &fakeEquipmentRepo{}
	svc := newRequestService(reqRepo, eqRepo)

	_, err := svc.UpdateRequestStage(context.Background(), 1, dto.UpdateRequestStageDTO{Stage: "Repaired"})
	require.NoError(t, err)

	assert.Empty(t, eqRepo.scrapped, "обратного пути из списания нет")
}
