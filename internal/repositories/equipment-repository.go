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
	apperrors "gearguard/pkg/errors"
)

const equipmentTable = "equipment"

// Колонки самой таблицы, без JOIN-ов. Порядок важен для scanEquipmentBase.
const equipmentBaseColumns = "id, name, serial_number, department, category, location, assigned_to, purchase_date, warranty_date, team_id, is_scrapped, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	GetTeamID(ctx context.Context, q Querier, id uint64) (null.Int, error)
	MarkScrapped(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter dto.EquipmentFilter) ([]dto.EquipmentDTO, error) {
	builder := sq.Select(
		"e.id", "e.name", "e.serial_number", "e.department", "e.category", "e.location",
		"e.assigned_to", "e.purchase_date", "e.warranty_date", "e.team_id", "e.is_scrapped",
		"e.created_at", "e.updated_at",
		"t.name AS team_name", "t.color AS team_color",
		"COUNT(r.id) FILTER (WHERE r.stage NOT IN ('Repaired', 'Scrap')) AS open_requests_count",
	).
		From(equipmentTable + " e").
		LeftJoin("teams t ON e.team_id = t.id").
		LeftJoin("requests r ON r.equipment_id = e.id").
		GroupBy("e.id", "t.id").
		OrderBy("e.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Department != "" {
		builder = builder.Where(sq.Eq{"e.department": filter.Department})
	}
	if filter.AssignedTo != "" {
		builder = builder.Where(sq.Eq{"e.assigned_to": filter.AssignedTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	equipments := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		var (
			equip                                          dto.EquipmentDTO
			serial, department, category, loc, assigned    sql.NullString
			purchaseDate, warrantyDate                     sql.NullTime
			teamID                                         sql.NullInt64
			teamName, teamColor                            sql.NullString
			openCount                                      int64
			createdAt, updatedAt                           time.Time
		)

		err := rows.Scan(
			&equip.ID, &equip.Name, &serial, &department, &category, &loc,
			&assigned, &purchaseDate, &warrantyDate, &teamID, &equip.IsScrapped,
			&createdAt, &updatedAt,
			&teamName, &teamColor,
			&openCount,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования оборудования в списке: %w", err)
		}

		equip.SerialNumber = nullStringFrom(serial)
		equip.Department = nullStringFrom(department)
		equip.Category = nullStringFrom(category)
		equip.Location = nullStringFrom(loc)
		equip.AssignedTo = nullStringFrom(assigned)
		equip.PurchaseDate = formatDate(purchaseDate)
		equip.WarrantyDate = formatDate(warrantyDate)
		equip.TeamID = nullIntFrom(teamID)
		equip.TeamName = strPtrFrom(teamName)
		equip.TeamColor = strPtrFrom(teamColor)
		equip.OpenRequestsCount = &openCount
		equip.CreatedAt = formatTimestamp(createdAt)
		equip.UpdatedAt = formatTimestamp(updatedAt)

		equipments = append(equipments, equip)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return equipments, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf(`
		SELECT
			e.id, e.name, e.serial_number, e.department, e.category, e.location,
			e.assigned_to, e.purchase_date, e.warranty_date, e.team_id, e.is_scrapped,
			e.created_at, e.updated_at,
			t.name AS team_name, t.color AS team_color
		FROM %s e
			LEFT JOIN teams t ON e.team_id = t.id
		WHERE e.id = $1
	`, equipmentTable)

	var (
		equip                                       dto.EquipmentDTO
		serial, department, category, loc, assigned sql.NullString
		purchaseDate, warrantyDate                  sql.NullTime
		teamID                                      sql.NullInt64
		teamName, teamColor                         sql.NullString
		createdAt, updatedAt                        time.Time
	)

	err := r.storage.QueryRow(ctx, query, id).Scan(
		&equip.ID, &equip.Name, &serial, &department, &category, &loc,
		&assigned, &purchaseDate, &warrantyDate, &teamID, &equip.IsScrapped,
		&createdAt, &updatedAt,
		&teamName, &teamColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}

	equip.SerialNumber = nullStringFrom(serial)
	equip.Department = nullStringFrom(department)
	equip.Category = nullStringFrom(category)
	equip.Location = nullStringFrom(loc)
	equip.AssignedTo = nullStringFrom(assigned)
	equip.PurchaseDate = formatDate(purchaseDate)
	equip.WarrantyDate = formatDate(warrantyDate)
	equip.TeamID = nullIntFrom(teamID)
	equip.TeamName = strPtrFrom(teamName)
	equip.TeamColor = strPtrFrom(teamColor)
	equip.CreatedAt = formatTimestamp(createdAt)
	equip.UpdatedAt = formatTimestamp(updatedAt)

	return &equip, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, serial_number, department, category, location, assigned_to, purchase_date, warranty_date, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9)
		RETURNING %s
	`, equipmentTable, equipmentBaseColumns)

	row := r.storage.QueryRow(ctx, query,
		d.Name,
		nullOrString(d.SerialNumber),
		nullOrString(d.Department),
		nullOrString(d.Category),
		nullOrString(d.Location),
		nullOrString(d.AssignedTo),
		nullOrString(d.PurchaseDate),
		nullOrString(d.WarrantyDate),
		nullOrInt(d.TeamID),
	)
	return scanEquipmentBase(row)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, serial_number = $2, department = $3, category = $4,
			location = $5, assigned_to = $6, purchase_date = $7::date,
			warranty_date = $8::date, team_id = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING %s
	`, equipmentTable, equipmentBaseColumns)

	row := r.storage.QueryRow(ctx, query,
		d.Name,
		nullOrString(d.SerialNumber),
		nullOrString(d.Department),
		nullOrString(d.Category),
		nullOrString(d.Location),
		nullOrString(d.AssignedTo),
		nullOrString(d.PurchaseDate),
		nullOrString(d.WarrantyDate),
		nullOrInt(d.TeamID),
		id,
	)

	equip, err := scanEquipmentBase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return equip, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

// GetTeamID читает текущую команду оборудования. Принимает querier, чтобы
// автозаполнение команды заявки выполнялось в той же транзакции, что и insert.
func (r *EquipmentRepository) GetTeamID(ctx context.Context, q Querier, id uint64) (null.Int, error) {
	if q == nil {
		q = r.storage
	}

	var teamID sql.NullInt64
	err := q.QueryRow(ctx, fmt.Sprintf("SELECT team_id FROM %s WHERE id = $1", equipmentTable), id).Scan(&teamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return null.Int{}, apperrors.ErrEquipmentNotFound
		}
		return null.Int{}, err
	}
	return nullIntFrom(teamID), nil
}

// MarkScrapped выставляет флаг списания. Отдельный нетранзакционный
// оператор: при его сбое после успешного обновления заявки состояния
// расходятся, компенсации нет.
func (r *EquipmentRepository) MarkScrapped(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("UPDATE %s SET is_scrapped = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = $1", equipmentTable)
	_, err := r.storage.Exec(ctx, query, id)
	return err
}

func scanEquipmentBase(row pgx.Row) (*dto.EquipmentDTO, error) {
	var (
		equip                                       dto.EquipmentDTO
		serial, department, category, loc, assigned sql.NullString
		purchaseDate, warrantyDate                  sql.NullTime
		teamID                                      sql.NullInt64
		createdAt, updatedAt                        time.Time
	)

	err := row.Scan(
		&equip.ID, &equip.Name, &serial, &department, &category, &loc,
		&assigned, &purchaseDate, &warrantyDate, &teamID, &equip.IsScrapped,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	equip.SerialNumber = nullStringFrom(serial)
	equip.Department = nullStringFrom(department)
	equip.Category = nullStringFrom(category)
	equip.Location = nullStringFrom(loc)
	equip.AssignedTo = nullStringFrom(assigned)
	equip.PurchaseDate = formatDate(purchaseDate)
	equip.WarrantyDate = formatDate(warrantyDate)
	equip.TeamID = nullIntFrom(teamID)
	equip.CreatedAt = formatTimestamp(createdAt)
	equip.UpdatedAt = formatTimestamp(updatedAt)

	return &equip, nil
}
