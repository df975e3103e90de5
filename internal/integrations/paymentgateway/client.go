package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Charge проводит списание средств через шлюз
func (c *Client) Charge(ctx context.Context, chargeReq ChargeRequest) (*ChargeResponse, error) {
	url := fmt.Sprintf("%s/internal/payments/charge", c.baseURL)

	body, err := json.Marshal(chargeReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, ErrPaymentDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var chargeResp ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if chargeResp.Status == "declined" {
		return nil, ErrPaymentDeclined
	}

	return &chargeResp, nil
}

// ChargeWithGracefulDegradation проводит списание с graceful degradation
// При недоступности шлюза возвращает ErrServiceDegraded: выезд при этом не блокируется,
// платеж фиксируется в бронировании как принятый offline
func (c *Client) ChargeWithGracefulDegradation(ctx context.Context, chargeReq ChargeRequest) (*ChargeResponse, error) {
	c.log.Info("Charging booking_id=%d amount=%s via payment gateway", chargeReq.BookingID, chargeReq.Amount)

	resp, err := c.Charge(ctx, chargeReq)
	if err != nil {
		// Отклоненный платеж - бизнес-ошибка, пробрасываем её дальше
		if err == ErrPaymentDeclined {
			c.log.Info("Payment declined for booking_id=%d", chargeReq.BookingID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность шлюза, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("Payment gateway unavailable, applying graceful degradation for booking_id=%d: %v", chargeReq.BookingID, err)
		return nil, fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, chargeReq.BookingID, err)
	}

	c.log.Info("Payment succeeded for booking_id=%d, transaction_id=%s", chargeReq.BookingID, resp.TransactionID)
	return resp, nil
}
