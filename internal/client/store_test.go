package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/localstore"
)

func newTestServer(t *testing.T, healthy bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "OK", "message": "GearGuard API is running"})
	})
	mux.HandleFunc("/api/equipment", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "name": "CNC Machine 01", "serial_number": "CNC-2023-001", "team_id": 1},
		})
	})
	mux.HandleFunc("/api/teams", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "name": "Mechanics", "color": "#3b82f6", "members": []string{"Jane Smith", "John Doe"}},
		})
	})
	mux.HandleFunc("/api/requests", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestStore(t *testing.T, baseURL string) *Store {
	t.Helper()
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewStore(NewAPI(baseURL, zap.NewNop()), local, zap.NewNop())
}

func TestStore_LoadAll(t *testing.T) {
	server := newTestServer(t, true)
	store := newTestStore(t, server.URL+"/api")

	store.LoadAll(context.Background())

	assert.True(t, store.ServerAvailable())
	equipment := store.Equipment()
	require.Len(t, equipment, 1)
	assert.Equal(t, ID("1"), equipment[0].ID, "числовой id с сервера разбирается в строковый")
	assert.Len(t, store.Teams(), 1)
	assert.Empty(t, store.Requests())
}

func TestStore_LoadAll_DegradesToEmpty(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")

	store.LoadAll(context.Background())

	assert.False(t, store.ServerAvailable())
	assert.Empty(t, store.Equipment())
	assert.Empty(t, store.Teams())
	assert.Empty(t, store.Requests())
}

func TestStore_OfflineCreateEquipment(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")
	store.LoadAll(context.Background())
	require.False(t, store.ServerAvailable())

	created, err := store.CreateEquipment(context.Background(), EquipmentInput{Name: "Portable Pump"})
	require.NoError(t, err)

	assert.True(t, created.ID.IsLocal())
	assert.Contains(t, created.SerialNumber, "LOCAL-")
	assert.Equal(t, "General", created.Department)
	assert.Equal(t, "General", created.Category)
	assert.Equal(t, "TBD", created.Location)

	equipment := store.Equipment()
	require.NotEmpty(t, equipment)
	assert.Equal(t, created.ID, equipment[0].ID, "оффлайн-запись встаёт в начало коллекции")
}

func TestStore_OfflineRecordsSurviveReload(t *testing.T) {
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	offline := NewStore(NewAPI("http://127.0.0.1:1/api", zap.NewNop()), local, zap.NewNop())
	offline.LoadAll(context.Background())
	_, err = offline.CreateTeam(context.Background(), TeamInput{Name: "Night Shift"})
	require.NoError(t, err)

	// Сервер снова доступен, но локальная команда остаётся впереди.
	server := newTestServer(t, true)
	store := NewStore(NewAPI(server.URL+"/api", zap.NewNop()), local, zap.NewNop())
	store.LoadAll(context.Background())

	teams := store.Teams()
	require.Len(t, teams, 2)
	assert.True(t, teams[0].ID.IsLocal())
	assert.Equal(t, "Night Shift", teams[0].Name)
	assert.Equal(t, "Mechanics", teams[1].Name)
}

func TestStore_OfflineCreateTeamDefaults(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")
	store.LoadAll(context.Background())

	created, err := store.CreateTeam(context.Background(), TeamInput{Name: "Welders"})
	require.NoError(t, err)

	assert.Equal(t, "#3b82f6", created.Color)
	assert.NotNil(t, created.Members)
	assert.Empty(t, created.Members)
}

func TestStore_OfflineCreateRequestDefaults(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")
	store.LoadAll(context.Background())

	created, err := store.CreateRequest(context.Background(), RequestInput{
		Subject: "Check pressure valve",
		Type:    "Preventive",
	})
	require.NoError(t, err)

	assert.Equal(t, "New", created.Stage)
	assert.Equal(t, "Medium", created.Priority)
}

func TestStore_ResolveTeam_ExistingByName(t *testing.T) {
	server := newTestServer(t, true)
	store := newTestStore(t, server.URL+"/api")
	store.LoadAll(context.Background())

	id, err := store.ResolveTeam(context.Background(), "mechanics")
	require.NoError(t, err)
	assert.Equal(t, ID("1"), id, "поиск по имени без учёта регистра")
}

func TestStore_ResolveTeam_CreatesMissing(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")
	store.LoadAll(context.Background())

	id, err := store.ResolveTeam(context.Background(), "Electricians")
	require.NoError(t, err)
	assert.True(t, id.IsLocal())

	teams := store.Teams()
	require.Len(t, teams, 1)
	assert.Equal(t, "Electricians", teams[0].Name)

	// Повторный вызов находит уже созданную команду.
	again, err := store.ResolveTeam(context.Background(), "electricians")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Len(t, store.Teams(), 1)
}

func TestStore_ResolveEquipment_CreatesMissing(t *testing.T) {
	store := newTestStore(t, "http://127.0.0.1:1/api")
	store.LoadAll(context.Background())

	id, err := store.ResolveEquipment(context.Background(), "Forklift 07")
	require.NoError(t, err)
	assert.True(t, id.IsLocal())

	equipment := store.Equipment()
	require.Len(t, equipment, 1)
	assert.Equal(t, "General", equipment[0].Department, "локальные значения по умолчанию")
}
