package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

const teamsTable = "teams"
const teamMembersTable = "team_members"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	InsertTeam(ctx context.Context, q Querier, d dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeamRow(ctx context.Context, q Querier, id uint64, d dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeamMembers(ctx context.Context, q Querier, teamID uint64) error
	InsertTeamMembers(ctx context.Context, q Querier, teamID uint64, members []string) error
	DeleteTeam(ctx context.Context, id uint64) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{
		storage: storage,
	}
}

// GetTeams возвращает команды со счётчиком активных заявок и участниками,
// отсортированными по алфавиту.
func (r *TeamRepository) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.color, t.created_at, t.updated_at,
			COUNT(r.id) FILTER (WHERE r.stage NOT IN ('Repaired', 'Scrap')) AS active_requests_count
		FROM %s t
			LEFT JOIN requests r ON r.team_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`, teamsTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка команд: %w", err)
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	for rows.Next() {
		var (
			team                 dto.TeamDTO
			activeCount          int64
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&team.ID, &team.Name, &team.Color, &createdAt, &updatedAt, &activeCount); err != nil {
			return nil, fmt.Errorf("ошибка сканирования команды в списке: %w", err)
		}
		team.Members = make([]string, 0)
		team.ActiveRequestsCount = &activeCount
		team.CreatedAt = formatTimestamp(createdAt)
		team.UpdatedAt = formatTimestamp(updatedAt)
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	membersByTeam, err := r.loadMembers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if members, ok := membersByTeam[teams[i].ID]; ok {
			teams[i].Members = members
		}
	}
	return teams, nil
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	query := fmt.Sprintf("SELECT id, name, color, created_at, updated_at FROM %s WHERE id = $1", teamsTable)

	var (
		team                 dto.TeamDTO
		createdAt, updatedAt time.Time
	)
	err := r.storage.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name, &team.Color, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	team.CreatedAt = formatTimestamp(createdAt)
	team.UpdatedAt = formatTimestamp(updatedAt)

	memberQuery := fmt.Sprintf("SELECT member_name FROM %s WHERE team_id = $1 ORDER BY member_name", teamMembersTable)
	rows, err := r.storage.Query(ctx, memberQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	team.Members = make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		team.Members = append(team.Members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) InsertTeam(ctx context.Context, q Querier, d dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	if q == nil {
		q = r.storage
	}

	color := constants.DefaultTeamColor
	if d.Color.Valid && d.Color.String != "" {
		color = d.Color.String
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, color) VALUES ($1, $2)
		RETURNING id, name, color, created_at, updated_at
	`, teamsTable)

	var (
		team                 dto.TeamDTO
		createdAt, updatedAt time.Time
	)
	err := q.QueryRow(ctx, query, d.Name, color).Scan(&team.ID, &team.Name, &team.Color, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	team.CreatedAt = formatTimestamp(createdAt)
	team.UpdatedAt = formatTimestamp(updatedAt)
	return &team, nil
}

func (r *TeamRepository) UpdateTeamRow(ctx context.Context, q Querier, id uint64, d dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	if q == nil {
		q = r.storage
	}

	// COALESCE: не присланный цвет оставляет прежний.
	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, color = COALESCE($2::varchar, color), updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING id, name, color, created_at, updated_at
	`, teamsTable)

	var (
		team                 dto.TeamDTO
		createdAt, updatedAt time.Time
	)
	err := q.QueryRow(ctx, query, d.Name, nullOrString(d.Color), id).Scan(&team.ID, &team.Name, &team.Color, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	team.CreatedAt = formatTimestamp(createdAt)
	team.UpdatedAt = formatTimestamp(updatedAt)
	return &team, nil
}

func (r *TeamRepository) DeleteTeamMembers(ctx context.Context, q Querier, teamID uint64) error {
	if q == nil {
		q = r.storage
	}
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE team_id = $1", teamMembersTable), teamID)
	return err
}

func (r *TeamRepository) InsertTeamMembers(ctx context.Context, q Querier, teamID uint64, members []string) error {
	if len(members) == 0 {
		return nil
	}
	if q == nil {
		q = r.storage
	}

	builder := sq.Insert(teamMembersTable).Columns("team_id", "member_name").PlaceholderFormat(sq.Dollar)
	for _, member := range members {
		builder = builder.Values(teamID, member)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса вставки участников: %w", err)
	}

	_, err = q.Exec(ctx, query, args...)
	return err
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", teamsTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// loadMembers читает всех участников одним запросом и группирует по командам.
func (r *TeamRepository) loadMembers(ctx context.Context) (map[uint64][]string, error) {
	query := fmt.Sprintf("SELECT team_id, member_name FROM %s ORDER BY member_name", teamMembersTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	membersByTeam := make(map[uint64][]string)
	for rows.Next() {
		var (
			teamID uint64
			name   string
		)
		if err := rows.Scan(&teamID, &name); err != nil {
			return nil, err
		}
		membersByTeam[teamID] = append(membersByTeam[teamID], name)
	}
	return membersByTeam, rows.Err()
}
