package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

const statsOverviewCacheKey = "stats:overview"

type RequestService struct {
	requestRepository   repositories.RequestRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	txManager           repositories.TxManagerInterface
	statsTTL            time.Duration
	logger              *zap.Logger
}

func NewRequestService(
	requestRepository repositories.RequestRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	txManager repositories.TxManagerInterface,
	statsTTL time.Duration,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepository:   requestRepository,
		equipmentRepository: equipmentRepository,
		cacheRepository:     cacheRepository,
		txManager:           txManager,
		statsTTL:            statsTTL,
		logger:              logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error) {
	return s.requestRepository.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	return s.requestRepository.FindRequest(ctx, id)
}

// CreateRequest создаёт заявку. Если команда не указана, а оборудование
// указано, команда берётся из оборудования - в той же транзакции, чтобы
// не прочитать команду, которую успели поменять.
func (s *RequestService) CreateRequest(ctx context.Context, d dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	var request *dto.RequestDTO

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		teamID := d.TeamID
		if !teamID.Valid && d.EquipmentID.Valid {
			equipmentTeam, errTx := s.equipmentRepository.GetTeamID(ctx, tx, uint64(d.EquipmentID.Int))
			if errTx != nil {
				return errTx
			}
			teamID = equipmentTeam
		}

		created, errTx := s.requestRepository.InsertRequest(ctx, tx, d, teamID)
		if errTx != nil {
			return errTx
		}
		request = created
		return nil
	})
	if err != nil {
		s.logger.Error("ошибка при создании заявки", zap.Error(err))
		return nil, err
	}

	s.logger.Info("заявка успешно создана", zap.Uint64("id", request.ID), zap.String("subject", request.Subject))
	invalidateStatsCache(ctx, s.cacheRepository, s.logger)
	return request, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, d dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	request, err := s.requestRepository.UpdateRequest(ctx, id, d)
	if err != nil {
		return nil, err
	}

	s.applyScrap(ctx, d.Stage, d.EquipmentID)
	invalidateStatsCache(ctx, s.cacheRepository, s.logger)
	return request, nil
}

// UpdateRequestStage - смена стадии при перетаскивании карточки на доске.
func (s *RequestService) UpdateRequestStage(ctx context.Context, id uint64, d dto.UpdateRequestStageDTO) (*dto.RequestDTO, error) {
	request, err := s.requestRepository.UpdateRequestStage(ctx, id, d.Stage)
	if err != nil {
		return nil, err
	}

	equipmentID := d.EquipmentID
	if !equipmentID.Valid {
		equipmentID = request.EquipmentID
	}
	s.applyScrap(ctx, d.Stage, equipmentID)
	invalidateStatsCache(ctx, s.cacheRepository, s.logger)
	return request, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	err := s.requestRepository.DeleteRequest(ctx, id)
	if err != nil {
		return err
	}
	invalidateStatsCache(ctx, s.cacheRepository, s.logger)
	return nil
}

func (s *RequestService) GetStatsOverview(ctx context.Context) (*dto.RequestStatsDTO, error) {
	if s.cacheRepository != nil {
		cached, err := s.cacheRepository.Get(ctx, statsOverviewCacheKey)
		if err == nil && cached != "" {
			var stats dto.RequestStatsDTO
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.requestRepository.GetStatsOverview(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheRepository != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cacheRepository.Set(ctx, statsOverviewCacheKey, payload, s.statsTTL); err != nil {
				s.logger.Warn("не удалось записать статистику в кеш", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// applyScrap помечает оборудование списанным при переводе заявки в Scrap.
// Отдельный запрос вне транзакции обновления заявки, обратного пути нет.
func (s *RequestService) applyScrap(ctx context.Context, stage string, equipmentID null.Int) {
	if stage != constants.StageScrap || !equipmentID.Valid {
		return
	}
	if err := s.equipmentRepository.MarkScrapped(ctx, uint64(equipmentID.Int)); err != nil {
		s.logger.Error("не удалось пометить оборудование списанным",
			zap.Int("equipment_id", equipmentID.Int), zap.Error(err))
	}
}

// invalidateStatsCache сбрасывает кеш сводки после любой мутации заявок.
// Кеш вспомогательный, ошибки только логируем.
func invalidateStatsCache(ctx context.Context, cache repositories.CacheRepositoryInterface, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, statsOverviewCacheKey); err != nil {
		logger.Warn("не удалось сбросить кеш статистики", zap.Error(err))
	}
}
