package bookingapi

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

// Client клиент для работы с Booking API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableProfessionals получает специалистов, доступных для услуги на дату (YYYY-MM-DD)
func (c *Client) GetAvailableProfessionals(ctx context.Context, serviceID, date string) (*ProfessionalsResponse, error) {
	query := url.Values{}
	query.Set("serviceId", serviceID)
	query.Set("date", date)
	endpoint := fmt.Sprintf("%s/api/bookings/available-professionals?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	c.log.Info("BookingAPI: fetching professionals service=%s date=%s", serviceID, date)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var result ProfessionalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	for i, employee := range result.Employees() {
		if employee.ID == "" {
			return nil, fmt.Errorf("%w: professional #%d has empty _id", ErrInvalidResponse, i)
		}
	}

	c.log.Info("BookingAPI: received success=%t professionals=%d for service=%s", result.Success, len(result.Employees()), serviceID)
	return &result, nil
}
