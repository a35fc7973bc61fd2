package client

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"gearguard/pkg/localstore"
)

// Ключи оффлайн-коллекций в локальном хранилище.
const (
	localEquipmentKey = "local_equipment"
	localTeamsKey     = "local_teams"
	localRequestsKey  = "local_requests"
)

// Store держит три коллекции и знает, доступен ли сервер.
// Все методы безопасны для конкурентного вызова.
type Store struct {
	api    *API
	local  localstore.Storage
	logger *zap.Logger

	mu              sync.RWMutex
	equipment       []EquipmentRecord
	teams           []TeamRecord
	requests        []RequestRecord
	serverAvailable bool
}

func NewStore(api *API, local localstore.Storage, logger *zap.Logger) *Store {
	return &Store{
		api:             api,
		local:           local,
		logger:          logger.Named("store"),
		serverAvailable: true,
	}
}

// LoadAll перезагружает все коллекции. Сначала проба живости, затем три
// запроса: ошибка любого из них деградирует до пустого списка, а не
// валит загрузку целиком. Оффлайн-записи идут в начале коллекций.
func (s *Store) LoadAll(ctx context.Context) {
	available := true
	if err := s.api.Health(ctx); err != nil {
		s.logger.Warn("Сервер недоступен, работаем с локальными данными", zap.Error(err))
		available = false
	}

	equipment, err := s.api.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("Ошибка загрузки оборудования", zap.Error(err))
		equipment = []EquipmentRecord{}
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		s.logger.Error("Ошибка загрузки команд", zap.Error(err))
		teams = []TeamRecord{}
	}
	requests, err := s.api.ListRequests(ctx)
	if err != nil {
		s.logger.Error("Ошибка загрузки заявок", zap.Error(err))
		requests = []RequestRecord{}
	}

	localEquipment := readLocal[EquipmentRecord](s, localEquipmentKey)
	localTeams := readLocal[TeamRecord](s, localTeamsKey)
	localRequests := readLocal[RequestRecord](s, localRequestsKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverAvailable = available
	s.equipment = append(localEquipment, equipment...)
	s.teams = append(localTeams, teams...)
	s.requests = append(localRequests, requests...)
}

func (s *Store) Equipment() []EquipmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EquipmentRecord, len(s.equipment))
	copy(out, s.equipment)
	return out
}

func (s *Store) Teams() []TeamRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TeamRecord, len(s.teams))
	copy(out, s.teams)
	return out
}

func (s *Store) Requests() []RequestRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RequestRecord, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Store) ServerAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serverAvailable
}

// MoveRequestStage - перенос карточки на канбан-доске: PATCH стадии,
// затем полная перезагрузка, чтобы подтянуть списание оборудования.
func (s *Store) MoveRequestStage(ctx context.Context, id ID, stage string, equipmentID *ID) error {
	if err := s.api.UpdateRequestStage(ctx, id, stage, equipmentID); err != nil {
		return err
	}
	s.LoadAll(ctx)
	return nil
}

// readLocal читает оффлайн-коллекцию. Битый или отсутствующий файл -
// просто пустой список.
func readLocal[T any](s *Store, key string) []T {
	data, err := s.local.Read(key)
	if err != nil {
		s.logger.Warn("Ошибка чтения локальных данных", zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("Ошибка разбора локальных данных", zap.String("key", key), zap.Error(err))
		return nil
	}
	return records
}

func writeLocal[T any](s *Store, key string, records []T) {
	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("Ошибка сериализации локальных данных", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.local.Write(key, data); err != nil {
		s.logger.Error("Ошибка записи локальных данных", zap.String("key", key), zap.Error(err))
	}
}
