package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type TeamService struct {
	teamRepository repositories.TeamRepositoryInterface
	txManager      repositories.TxManagerInterface
	logger         *zap.Logger
}

func NewTeamService(
	teamRepository repositories.TeamRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		teamRepository: teamRepository,
		txManager:      txManager,
		logger:         logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return s.teamRepository.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	return s.teamRepository.FindTeam(ctx, id)
}

// CreateTeam вставляет команду и её участников одной транзакцией.
// В ответе участники идут в том порядке, в каком их прислали.
func (s *TeamService) CreateTeam(ctx context.Context, d dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	var team *dto.TeamDTO

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		created, errTx := s.teamRepository.InsertTeam(ctx, tx, d)
		if errTx != nil {
			return errTx
		}
		if errTx := s.teamRepository.InsertTeamMembers(ctx, tx, created.ID, d.Members); errTx != nil {
			return errTx
		}
		created.Members = d.Members
		team = created
		return nil
	})
	if err != nil {
		s.logger.Error("ошибка при создании команды", zap.Error(err))
		return nil, err
	}

	s.logger.Info("команда успешно создана", zap.Uint64("id", team.ID), zap.String("name", team.Name))
	return team, nil
}

// UpdateTeam полностью заменяет состав: старые участники удаляются,
// присланный список вставляется заново. Пустой список очищает команду.
func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, d dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	var team *dto.TeamDTO

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		updated, errTx := s.teamRepository.UpdateTeamRow(ctx, tx, id, d)
		if errTx != nil {
			return errTx
		}
		if errTx := s.teamRepository.DeleteTeamMembers(ctx, tx, id); errTx != nil {
			return errTx
		}
		if errTx := s.teamRepository.InsertTeamMembers(ctx, tx, id, d.Members); errTx != nil {
			return errTx
		}
		updated.Members = d.Members
		team = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	return s.teamRepository.DeleteTeam(ctx, id)
}
