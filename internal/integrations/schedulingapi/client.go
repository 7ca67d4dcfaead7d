package schedulingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент HTTP API сервиса записи (используется slotctl в режиме --server)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableSlots получает доступные слоты услуги на дату
func (c *Client) GetAvailableSlots(ctx context.Context, serviceID, date, purpose string) (*AvailableSlots, error) {
	q := url.Values{}
	q.Set("date", date)
	if purpose != "" {
		q.Set("purpose", purpose)
	}
	endpoint := fmt.Sprintf("%s/api/v1/services/%s/available-slots?%s", c.baseURL, url.PathEscape(serviceID), q.Encode())

	var out AvailableSlots
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	c.log.Info("Fetched %d slots for service=%s date=%s", len(out.Slots), serviceID, date)
	return &out, nil
}

// GetSeries получает все сеансы серии
func (c *Client) GetSeries(ctx context.Context, seriesID string) (*Series, error) {
	endpoint := fmt.Sprintf("%s/api/v1/series/%s", c.baseURL, url.PathEscape(seriesID))

	var out Series
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, errorMessage(resp.Body))
	default:
		c.log.Error("Scheduling API returned status %d for %s", resp.StatusCode, endpoint)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(raw)
}
