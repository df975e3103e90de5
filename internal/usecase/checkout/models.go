package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// ChargeInput доначисление, добавленное оператором перед выездом
type ChargeInput struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Department  string `json:"department"`
}

// ExecuteRequest запрос на проведение выезда
type ExecuteRequest struct {
	BookingID         int64
	AdditionalCharges []ChargeInput `json:"additionalCharges"`
	FinalPayment      string        `json:"finalPayment"`
	PaymentMethod     string        `json:"paymentMethod"` // cash, card, transfer
}

// FolioLine строка фолио
type FolioLine struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// FolioResponse финансовая сводка бронирования
type FolioResponse struct {
	BookingID      int64       `json:"bookingId"`
	ReferenceCode  string      `json:"referenceCode"`
	GuestName      string      `json:"guestName"`
	RoomCharge     string      `json:"roomCharge"`
	Tax            string      `json:"tax"`
	ServiceCharges string      `json:"serviceCharges"`
	AdvancePayment string      `json:"advancePayment"`
	PaymentsTotal  string      `json:"paymentsTotal"`
	Adjustments    string      `json:"adjustments"`
	Balance        string      `json:"balance"`
	Lines          []FolioLine `json:"lines"`
}

// ExecuteResponse итог успешного выезда
type ExecuteResponse struct {
	BookingID     int64     `json:"bookingId"`
	FinalBalance  string    `json:"finalBalance"`
	ChargesTotal  string    `json:"chargesTotal"`
	FinalPayment  string    `json:"finalPayment"`
	TransactionID *string   `json:"transactionId,omitempty"` // nil при offline-платеже
	CheckedOutAt  time.Time `json:"checkedOutAt"`
}

// toFolioResponse собирает ответ из фолио
func toFolioResponse(b *domain.Booking, f *domain.Folio) *FolioResponse {
	return &FolioResponse{
		BookingID:      f.BookingID,
		ReferenceCode:  b.ReferenceCode,
		GuestName:      b.GuestName,
		RoomCharge:     f.RoomCharge.StringFixed(2),
		Tax:            f.Tax.StringFixed(2),
		ServiceCharges: f.ServiceCharges.StringFixed(2),
		AdvancePayment: f.AdvancePayment.StringFixed(2),
		PaymentsTotal:  f.PaymentsTotal.StringFixed(2),
		Adjustments:    f.Adjustments.StringFixed(2),
		Balance:        f.Balance.StringFixed(2),
		Lines: []FolioLine{
			{Description: "Проживание", Amount: f.RoomCharge.StringFixed(2)},
			{Description: "Налоги и сборы", Amount: f.Tax.StringFixed(2)},
			{Description: "Услуги", Amount: f.ServiceCharges.StringFixed(2)},
			{Description: "Аванс", Amount: f.AdvancePayment.Neg().StringFixed(2)},
			{Description: "Оплаты", Amount: f.PaymentsTotal.Neg().StringFixed(2)},
			{Description: "Корректировки", Amount: f.Adjustments.Neg().StringFixed(2)},
		},
	}
}

// parseCharges валидирует и конвертирует доначисления
func parseCharges(inputs []ChargeInput) ([]domain.AdditionalCharge, error) {
	charges := make([]domain.AdditionalCharge, 0, len(inputs))
	for _, in := range inputs {
		amount, err := decimal.NewFromString(in.Amount)
		if err != nil || amount.IsNegative() {
			return nil, ErrInvalidInput
		}
		if in.Description == "" || len(in.Description) > domain.MaxChargeDescriptionLength {
			return nil, ErrInvalidInput
		}
		charges = append(charges, domain.AdditionalCharge{
			Description: in.Description,
			Amount:      amount,
			Department:  in.Department,
		})
	}
	return charges, nil
}
