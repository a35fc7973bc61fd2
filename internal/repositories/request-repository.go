package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

const requestsTable = "requests"

// Колонки самой таблицы, без JOIN-ов. Порядок важен для scanRequestBase.
const requestBaseColumns = "id, subject, equipment_id, team_id, type, stage, priority, scheduled_date, assigned_to, duration, description, created_at, updated_at"

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	InsertRequest(ctx context.Context, q Querier, d dto.CreateRequestDTO, teamID null.Int) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, d dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
	GetStatsOverview(ctx context.Context) (*dto.RequestStatsDTO, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{
		storage: storage,
	}
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error) {
	builder := sq.Select(
		"r.id", "r.subject", "r.equipment_id", "r.team_id", "r.type", "r.stage",
		"r.priority", "r.scheduled_date", "r.assigned_to", "r.duration", "r.description",
		"r.created_at", "r.updated_at",
		"e.name AS equipment_name", "e.serial_number AS equipment_serial",
		"t.name AS team_name", "t.color AS team_color",
	).
		From(requestsTable + " r").
		LeftJoin("equipment e ON r.equipment_id = e.id").
		LeftJoin("teams t ON r.team_id = t.id").
		OrderBy("r.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Stage != "" {
		builder = builder.Where(sq.Eq{"r.stage": filter.Stage})
	}
	if filter.TeamID > 0 {
		builder = builder.Where(sq.Eq{"r.team_id": filter.TeamID})
	}
	if filter.EquipmentID > 0 {
		builder = builder.Where(sq.Eq{"r.equipment_id": filter.EquipmentID})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"r.type": filter.Type})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"r.subject": "%" + filter.Search + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заявок: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		req, err := scanRequestJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки в списке: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	query := fmt.Sprintf(`
		SELECT
			r.id, r.subject, r.equipment_id, r.team_id, r.type, r.stage,
			r.priority, r.scheduled_date, r.assigned_to, r.duration, r.description,
			r.created_at, r.updated_at,
			e.name AS equipment_name, e.serial_number AS equipment_serial,
			t.name AS team_name, t.color AS team_color
		FROM %s r
			LEFT JOIN equipment e ON r.equipment_id = e.id
			LEFT JOIN teams t ON r.team_id = t.id
		WHERE r.id = $1
	`, requestsTable)

	req, err := scanRequestJoined(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

// InsertRequest вставляет заявку. Команда приходит уже разрешённой
// (автозаполнение из оборудования делает сервис в той же транзакции).
func (r *RequestRepository) InsertRequest(ctx context.Context, q Querier, d dto.CreateRequestDTO, teamID null.Int) (*dto.RequestDTO, error) {
	if q == nil {
		q = r.storage
	}

	priority := constants.PriorityMedium
	if d.Priority.Valid && d.Priority.String != "" {
		priority = d.Priority.String
	}
	duration := 0.0
	if d.Duration.Valid && d.Duration.Float64 >= 0 {
		duration = d.Duration.Float64
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (subject, equipment_id, team_id, type, priority, scheduled_date, assigned_to, duration, description)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9)
		RETURNING %s
	`, requestsTable, requestBaseColumns)

	row := q.QueryRow(ctx, query,
		d.Subject,
		nullOrInt(d.EquipmentID),
		nullOrInt(teamID),
		d.Type,
		priority,
		nullOrString(d.ScheduledDate),
		nullOrString(d.AssignedTo),
		duration,
		nullOrString(d.Description),
	)
	return scanRequestBase(row)
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, d dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	duration := 0.0
	if d.Duration.Valid && d.Duration.Float64 >= 0 {
		duration = d.Duration.Float64
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET subject = $1, equipment_id = $2, team_id = $3, type = $4,
			stage = $5, priority = $6, scheduled_date = $7::date, assigned_to = $8,
			duration = $9, description = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING %s
	`, requestsTable, requestBaseColumns)

	row := r.storage.QueryRow(ctx, query,
		d.Subject,
		nullOrInt(d.EquipmentID),
		nullOrInt(d.TeamID),
		d.Type,
		d.Stage,
		d.Priority,
		nullOrString(d.ScheduledDate),
		nullOrString(d.AssignedTo),
		duration,
		nullOrString(d.Description),
		id,
	)

	req, err := scanRequestBase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestRepository) UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET stage = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s
	`, requestsTable, requestBaseColumns)

	req, err := scanRequestBase(r.storage.QueryRow(ctx, query, stage, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", requestsTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// GetStatsOverview считает сводку одним запросом по всей таблице.
func (r *RequestRepository) GetStatsOverview(ctx context.Context) (*dto.RequestStatsDTO, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE stage NOT IN ('Repaired', 'Scrap')) AS active_requests,
			COUNT(*) FILTER (WHERE stage = 'New') AS new_requests,
			COUNT(*) FILTER (WHERE stage = 'In Progress') AS in_progress_requests,
			COUNT(*) FILTER (WHERE stage = 'Repaired') AS repaired_requests,
			COUNT(*) FILTER (WHERE scheduled_date < CURRENT_DATE AND stage NOT IN ('Repaired', 'Scrap')) AS overdue_requests
		FROM %s
	`, requestsTable)

	var stats dto.RequestStatsDTO
	err := r.storage.QueryRow(ctx, query).Scan(
		&stats.ActiveRequests,
		&stats.NewRequests,
		&stats.InProgressRequests,
		&stats.RepairedRequests,
		&stats.OverdueRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчета статистики заявок: %w", err)
	}
	return &stats, nil
}

func scanRequestBase(row pgx.Row) (*dto.RequestDTO, error) {
	var (
		req                   dto.RequestDTO
		equipmentID, teamID   sql.NullInt64
		scheduledDate         sql.NullTime
		assigned, description sql.NullString
		createdAt, updatedAt  time.Time
	)

	err := row.Scan(
		&req.ID, &req.Subject, &equipmentID, &teamID, &req.Type, &req.Stage,
		&req.Priority, &scheduledDate, &assigned, &req.Duration, &description,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.EquipmentID = nullIntFrom(equipmentID)
	req.TeamID = nullIntFrom(teamID)
	req.ScheduledDate = formatDate(scheduledDate)
	req.AssignedTo = nullStringFrom(assigned)
	req.Description = nullStringFrom(description)
	req.CreatedAt = formatTimestamp(createdAt)
	req.UpdatedAt = formatTimestamp(updatedAt)

	return &req, nil
}

func scanRequestJoined(row pgx.Row) (*dto.RequestDTO, error) {
	var (
		req                    dto.RequestDTO
		equipmentID, teamID    sql.NullInt64
		scheduledDate          sql.NullTime
		assigned, description  sql.NullString
		equipName, equipSerial sql.NullString
		teamName, teamColor    sql.NullString
		createdAt, updatedAt   time.Time
	)

	err := row.Scan(
		&req.ID, &req.Subject, &equipmentID, &teamID, &req.Type, &req.Stage,
		&req.Priority, &scheduledDate, &assigned, &req.Duration, &description,
		&createdAt, &updatedAt,
		&equipName, &equipSerial,
		&teamName, &teamColor,
	)
	if err != nil {
		return nil, err
	}

	req.EquipmentID = nullIntFrom(equipmentID)
	req.TeamID = nullIntFrom(teamID)
	req.ScheduledDate = formatDate(scheduledDate)
	req.AssignedTo = nullStringFrom(assigned)
	req.Description = nullStringFrom(description)
	req.EquipmentName = strPtrFrom(equipName)
	req.EquipmentSerial = strPtrFrom(equipSerial)
	req.TeamName = strPtrFrom(teamName)
	req.TeamColor = strPtrFrom(teamColor)
	req.CreatedAt = formatTimestamp(createdAt)
	req.UpdatedAt = formatTimestamp(updatedAt)

	return &req, nil
}
