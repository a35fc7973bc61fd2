package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// API - фасад над REST-интерфейсом сервера GearGuard.
type API struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewAPI(baseURL string, logger *zap.Logger) *API {
	return &API{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
		logger:     logger.Named("api_client"),
	}
}

// Health - проба живости сервера.
func (a *API) Health(ctx context.Context) error {
	_, err := a.doRequest(ctx, http.MethodGet, "/health", nil)
	return err
}

func (a *API) ListEquipment(ctx context.Context) ([]EquipmentRecord, error) {
	return fetchList[EquipmentRecord](a, ctx, "/equipment")
}

func (a *API) ListTeams(ctx context.Context) ([]TeamRecord, error) {
	return fetchList[TeamRecord](a, ctx, "/teams")
}

func (a *API) ListRequests(ctx context.Context) ([]RequestRecord, error) {
	return fetchList[RequestRecord](a, ctx, "/requests")
}

func (a *API) CreateEquipment(ctx context.Context, input EquipmentInput) (*EquipmentRecord, error) {
	return postEntity[EquipmentRecord](a, ctx, "/equipment", input)
}

func (a *API) CreateTeam(ctx context.Context, input TeamInput) (*TeamRecord, error) {
	return postEntity[TeamRecord](a, ctx, "/teams", input)
}

func (a *API) CreateRequest(ctx context.Context, input RequestInput) (*RequestRecord, error) {
	return postEntity[RequestRecord](a, ctx, "/requests", input)
}

// UpdateRequestStage меняет стадию заявки (перенос карточки на доске).
func (a *API) UpdateRequestStage(ctx context.Context, id ID, stage string, equipmentID *ID) error {
	payload := map[string]interface{}{"stage": stage}
	if equipmentID != nil {
		payload["equipment_id"] = *equipmentID
	}
	_, err := a.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/requests/%s/stage", id), payload)
	return err
}

// fetchList получает и парсит список сущностей с эндпоинта.
func fetchList[T any](a *API, ctx context.Context, endpoint string) ([]T, error) {
	rawData, err := a.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения данных для эндпоинта %s: %w", endpoint, err)
	}

	var entities []T
	if err := json.Unmarshal(rawData, &entities); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON для эндпоинта %s: %w", endpoint, err)
	}
	a.logger.Debug("Успешно получено и распарсено",
		zap.String("endpoint", endpoint),
		zap.Int("count", len(entities)),
	)
	return entities, nil
}

func postEntity[T any](a *API, ctx context.Context, endpoint string, payload interface{}) (*T, error) {
	rawData, err := a.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := json.Unmarshal(rawData, &entity); err != nil {
		return nil, fmt.Errorf("ошибка парсинга ответа для эндпоинта %s: %w", endpoint, err)
	}
	return &entity, nil
}

func (a *API) doRequest(ctx context.Context, method, endpoint string, payload interface{}) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса '%s %s': %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("API для эндпоинта '%s' вернул статус: %s", endpoint, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
