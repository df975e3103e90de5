package domain

import "github.com/shopspring/decimal"

// Folio computed per-booking financial summary, never persisted
type Folio struct {
	BookingID int64

	RoomCharge     decimal.Decimal
	Tax            decimal.Decimal
	ServiceCharges decimal.Decimal
	AdvancePayment decimal.Decimal
	PaymentsTotal  decimal.Decimal
	Adjustments    decimal.Decimal

	// Balance = RoomCharge + Tax + ServiceCharges - AdvancePayment - PaymentsTotal - Adjustments
	Balance decimal.Decimal
}

// ComputeBalance пересчитывает баланс фолио из его составляющих
func (f *Folio) ComputeBalance() {
	charges := f.RoomCharge.Add(f.Tax).Add(f.ServiceCharges)
	credits := f.AdvancePayment.Add(f.PaymentsTotal).Add(f.Adjustments)
	f.Balance = charges.Sub(credits)
}

// AdditionalCharge доначисление, добавленное на стойке перед выездом
// Существует только в сессии выезда до подтверждения checkout
type AdditionalCharge struct {
	Description string
	Amount      decimal.Decimal
	Department  string
}

// SumAdditionalCharges сумма доначислений
func SumAdditionalCharges(charges []AdditionalCharge) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range charges {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// FinalBalance итоговый баланс выезда:
// folio.Balance + sum(additional_charges) - final_payment
func FinalBalance(folioBalance decimal.Decimal, charges []AdditionalCharge, finalPayment decimal.Decimal) decimal.Decimal {
	return folioBalance.Add(SumAdditionalCharges(charges)).Sub(finalPayment)
}
