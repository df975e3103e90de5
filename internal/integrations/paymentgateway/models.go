package paymentgateway

import "github.com/shopspring/decimal"

// ChargeRequest запрос на списание средств
type ChargeRequest struct {
	BookingID     int64           `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"` // cash, card, transfer
	Description   string          `json:"description"`
}

// ChargeResponse ответ шлюза о проведенном платеже
type ChargeResponse struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"` // succeeded, declined
	Amount        decimal.Decimal `json:"amount"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
