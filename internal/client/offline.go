package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/pkg/constants"
)

// Оффлайн-создания. Когда последняя проба живости провалилась, записи
// кладутся сразу в локальное хранилище под id "local-<uuid>". Проба не
// атомарна, поэтому создание, упавшее уже на запросе к серверу, уходит
// тем же локальным путём.

func localID() ID {
	return ID("local-" + uuid.NewString())
}

// CreateEquipment создаёт оборудование на сервере либо локально.
func (s *Store) CreateEquipment(ctx context.Context, input EquipmentInput) (*EquipmentRecord, error) {
	if s.ServerAvailable() {
		created, err := s.api.CreateEquipment(ctx, input)
		if err == nil {
			s.mu.Lock()
			s.equipment = append([]EquipmentRecord{*created}, s.equipment...)
			s.mu.Unlock()
			return created, nil
		}
		s.logger.Warn("Создание оборудования на сервере не удалось, сохраняем локально", zap.Error(err))
	}
	return s.createEquipmentLocally(input), nil
}

func (s *Store) createEquipmentLocally(input EquipmentInput) *EquipmentRecord {
	record := EquipmentRecord{
		ID:           localID(),
		Name:         input.Name,
		SerialNumber: input.SerialNumber,
		Department:   input.Department,
		Category:     input.Category,
		Location:     input.Location,
		AssignedTo:   input.AssignedTo,
		PurchaseDate: input.PurchaseDate,
		WarrantyDate: input.WarrantyDate,
		TeamID:       input.TeamID,
	}
	if record.SerialNumber == "" {
		record.SerialNumber = fmt.Sprintf("LOCAL-%d", time.Now().UnixMilli())
	}
	if record.Department == "" {
		record.Department = "General"
	}
	if record.Category == "" {
		record.Category = "General"
	}
	if record.Location == "" {
		record.Location = "TBD"
	}

	s.mu.Lock()
	s.equipment = append([]EquipmentRecord{record}, s.equipment...)
	s.mu.Unlock()
	s.persistLocalEquipment()
	return &record
}

// CreateTeam создаёт команду на сервере либо локально.
func (s *Store) CreateTeam(ctx context.Context, input TeamInput) (*TeamRecord, error) {
	if s.ServerAvailable() {
		created, err := s.api.CreateTeam(ctx, input)
		if err == nil {
			s.mu.Lock()
			s.teams = append([]TeamRecord{*created}, s.teams...)
			s.mu.Unlock()
			return created, nil
		}
		s.logger.Warn("Создание команды на сервере не удалось, сохраняем локально", zap.Error(err))
	}

	record := TeamRecord{
		ID:      localID(),
		Name:    input.Name,
		Color:   input.Color,
		Members: input.Members,
	}
	if record.Color == "" {
		record.Color = constants.DefaultTeamColor
	}
	if record.Members == nil {
		record.Members = []string{}
	}

	s.mu.Lock()
	s.teams = append([]TeamRecord{record}, s.teams...)
	s.mu.Unlock()
	s.persistLocalTeams()
	return &record, nil
}

// CreateRequest создаёт заявку на сервере либо локально.
func (s *Store) CreateRequest(ctx context.Context, input RequestInput) (*RequestRecord, error) {
	if s.ServerAvailable() {
		created, err := s.api.CreateRequest(ctx, input)
		if err == nil {
			s.mu.Lock()
			s.requests = append([]RequestRecord{*created}, s.requests...)
			s.mu.Unlock()
			return created, nil
		}
		s.logger.Warn("Создание заявки на сервере не удалось, сохраняем локально", zap.Error(err))
	}

	record := RequestRecord{
		ID:            localID(),
		Subject:       input.Subject,
		EquipmentID:   input.EquipmentID,
		TeamID:        input.TeamID,
		Type:          input.Type,
		Stage:         constants.StageNew,
		Priority:      input.Priority,
		ScheduledDate: input.ScheduledDate,
		AssignedTo:    input.AssignedTo,
		Duration:      input.Duration,
		Description:   input.Description,
	}
	if record.Priority == "" {
		record.Priority = constants.PriorityMedium
	}

	s.mu.Lock()
	s.requests = append([]RequestRecord{record}, s.requests...)
	s.mu.Unlock()
	s.persistLocalRequests()
	return &record, nil
}

// ResolveTeam возвращает id команды по имени, при отсутствии создаёт её
// (на сервере либо локально) и возвращает id новой записи. Сравнение имён
// без учёта регистра.
func (s *Store) ResolveTeam(ctx context.Context, name string) (ID, error) {
	s.mu.RLock()
	for _, t := range s.teams {
		if strings.EqualFold(t.Name, name) {
			s.mu.RUnlock()
			return t.ID, nil
		}
	}
	s.mu.RUnlock()

	created, err := s.CreateTeam(ctx, TeamInput{Name: name, Members: []string{}})
	if err != nil {
		return ID(""), err
	}
	return created.ID, nil
}

// ResolveEquipment - то же самое для оборудования.
func (s *Store) ResolveEquipment(ctx context.Context, name string) (ID, error) {
	s.mu.RLock()
	for _, e := range s.equipment {
		if strings.EqualFold(e.Name, name) {
			s.mu.RUnlock()
			return e.ID, nil
		}
	}
	s.mu.RUnlock()

	created, err := s.CreateEquipment(ctx, EquipmentInput{Name: name})
	if err != nil {
		return ID(""), err
	}
	return created.ID, nil
}

// persist* сохраняют только оффлайн-записи, серверные подтянутся заново.

func (s *Store) persistLocalEquipment() {
	s.mu.RLock()
	local := make([]EquipmentRecord, 0)
	for _, e := range s.equipment {
		if e.ID.IsLocal() {
			local = append(local, e)
		}
	}
	s.mu.RUnlock()
	writeLocal(s, localEquipmentKey, local)
}

func (s *Store) persistLocalTeams() {
	s.mu.RLock()
	local := make([]TeamRecord, 0)
	for _, t := range s.teams {
		if t.ID.IsLocal() {
			local = append(local, t)
		}
	}
	s.mu.RUnlock()
	writeLocal(s, localTeamsKey, local)
}

func (s *Store) persistLocalRequests() {
	s.mu.RLock()
	local := make([]RequestRecord, 0)
	for _, r := range s.requests {
		if r.ID.IsLocal() {
			local = append(local, r)
		}
	}
	s.mu.RUnlock()
	writeLocal(s, localRequestsKey, local)
}
