package routes

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/validation"
)

// WorkflowTestSuite прогоняет полный жизненный цикл заявки через HTTP:
// команда → оборудование → заявка → доска → списание.
type WorkflowTestSuite struct {
	suite.Suite
	Echo *echo.Echo
	DB   *pgxpool.Pool
}

func (s *WorkflowTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URL не задан, интеграционный тест пропущен")
	}

	db, err := sql.Open("pgx", dsn)
	s.Require().NoError(err)
	defer db.Close()
	goose.SetBaseFS(migrations.FS)
	s.Require().NoError(goose.SetDialect("postgres"))
	s.Require().NoError(goose.Up(db, "."))

	s.DB, err = pgxpool.New(context.Background(), dsn)
	s.Require().NoError(err)

	e := echo.New()
	e.Validator = validation.New()

	cfg := config.New()
	InitRouter(e, s.DB, nil, zap.NewNop(), cfg)
	s.Echo = e
}

func (s *WorkflowTestSuite) SetupTest() {
	_, err := s.DB.Exec(context.Background(),
		`TRUNCATE TABLE requests, team_members, equipment, teams RESTART IDENTITY CASCADE;`)
	s.Require().NoError(err)
}

func (s *WorkflowTestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func (s *WorkflowTestSuite) do(method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func (s *WorkflowTestSuite) TestHealth() {
	rec, body := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OK", body["status"])
	s.Equal("GearGuard API is running", body["message"])
}

func (s *WorkflowTestSuite) TestFullMaintenanceWorkflow() {
	// Команда с участниками
	rec, team := s.do(http.MethodPost, "/api/teams", map[string]interface{}{
		"name":    "Mechanics",
		"color":   "#3b82f6",
		"members": []string{"John Doe", "Jane Smith"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	teamID := team["id"].(float64)

	// Оборудование, привязанное к команде
	rec, equipment := s.do(http.MethodPost, "/api/equipment", map[string]interface{}{
		"name":          "CNC Machine 01",
		"serial_number": "CNC-2023-001",
		"department":    "Production",
		"category":      "Machinery",
		"location":      "Factory Floor A",
		"team_id":       teamID,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	equipmentID := equipment["id"].(float64)

	// Заявка без команды: команда должна подтянуться из оборудования
	rec, request := s.do(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject":      "Leaking coolant",
		"equipment_id": equipmentID,
		"type":         "Corrective",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("New", request["stage"])
	s.Equal("Medium", request["priority"])
	s.Equal(teamID, request["team_id"], "команда берётся из оборудования")
	requestID := request["id"].(float64)

	// Перенос по доске
	rec, request = s.do(http.MethodPatch, fmt.Sprintf("/api/requests/%.0f/stage", requestID), map[string]interface{}{
		"stage": "In Progress",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("In Progress", request["stage"])

	// Списание: оборудование помечается списанным
	rec, request = s.do(http.MethodPatch, fmt.Sprintf("/api/requests/%.0f/stage", requestID), map[string]interface{}{
		"stage":        "Scrap",
		"equipment_id": equipmentID,
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Scrap", request["stage"])

	rec, equipment = s.do(http.MethodGet, fmt.Sprintf("/api/equipment/%.0f", equipmentID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(true, equipment["is_scrapped"])
}

func (s *WorkflowTestSuite) TestFullUpdateScrapMarksEquipment() {
	rec, equipment := s.do(http.MethodPost, "/api/equipment", map[string]interface{}{
		"name":          "Hydraulic Press 02",
		"serial_number": "HP-2023-002",
		"department":    "Production",
		"category":      "Machinery",
		"location":      "Factory Floor B",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	equipmentID := equipment["id"].(float64)

	rec, request := s.do(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject":      "Frame cracked",
		"equipment_id": equipmentID,
		"type":         "Corrective",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	requestID := request["id"].(float64)

	// Списание через полное обновление, а не через смену стадии
	rec, request = s.do(http.MethodPut, fmt.Sprintf("/api/requests/%.0f", requestID), map[string]interface{}{
		"subject":      "Frame cracked",
		"equipment_id": equipmentID,
		"type":         "Corrective",
		"stage":        "Scrap",
		"priority":     "High",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Scrap", request["stage"])

	rec, equipment = s.do(http.MethodGet, fmt.Sprintf("/api/equipment/%.0f", equipmentID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(true, equipment["is_scrapped"])
}

func (s *WorkflowTestSuite) TestTeamMemberReplace() {
	rec, team := s.do(http.MethodPost, "/api/teams", map[string]interface{}{
		"name":    "Electricians",
		"members": []string{"Sarah Wilson", "Tom Brown"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	teamID := team["id"].(float64)

	// Полная замена состава
	rec, team = s.do(http.MethodPut, fmt.Sprintf("/api/teams/%.0f", teamID), map[string]interface{}{
		"name":    "Electricians",
		"members": []string{"Emma Davis"},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]interface{}{"Emma Davis"}, team["members"])

	// Пустой список стирает всех
	rec, team = s.do(http.MethodPut, fmt.Sprintf("/api/teams/%.0f", teamID), map[string]interface{}{
		"name":    "Electricians",
		"members": []string{},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(team["members"])
}

func (s *WorkflowTestSuite) TestDeleteMissingRequestReturns404() {
	rec, body := s.do(http.MethodDelete, "/api/requests/9999", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.NotEmpty(body["error"])
}

func (s *WorkflowTestSuite) TestValidationErrorReturns400() {
	rec, body := s.do(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject": "No type",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.NotEmpty(body["error"])
}

func (s *WorkflowTestSuite) TestStatsOverview() {
	rec, _ := s.do(http.MethodPost, "/api/requests", map[string]interface{}{
		"subject": "Standalone inspection",
		"type":    "Preventive",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, stats := s.do(http.MethodGet, "/api/requests/stats/overview", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(float64(1), stats["active_requests"])
	s.Equal(float64(1), stats["new_requests"])
	s.Equal(float64(0), stats["overdue_requests"])
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}
