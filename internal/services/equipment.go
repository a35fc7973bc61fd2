package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		cacheRepository:     cacheRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, error) {
	return s.equipmentRepository.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.CreateEquipment(ctx, d)
	if err != nil {
		s.logger.Error("ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("оборудование успешно создано", zap.Uint64("id", equipment.ID))
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return s.equipmentRepository.UpdateEquipment(ctx, id, d)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	err := s.equipmentRepository.DeleteEquipment(ctx, id)
	if err != nil {
		return err
	}
	// Удаление оборудования каскадно убирает его заявки, сводка устаревает.
	invalidateStatsCache(ctx, s.cacheRepository, s.logger)
	return nil
}
