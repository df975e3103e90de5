package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	f := &Folio{
		RoomCharge:     decimal.NewFromInt(8000),
		Tax:            decimal.NewFromInt(960),
		ServiceCharges: decimal.NewFromInt(540),
		AdvancePayment: decimal.NewFromInt(800),
		PaymentsTotal:  decimal.NewFromInt(1200),
		Adjustments:    decimal.NewFromInt(0),
	}
	f.ComputeBalance()

	// (8000 + 960 + 540) - (800 + 1200) = 7500
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(7500)))
}

func TestFinalBalance_Formula(t *testing.T) {
	charges := []AdditionalCharge{
		{Description: "Мини-бар", Amount: decimal.NewFromInt(300), Department: "room_service"},
		{Description: "Поздний выезд", Amount: decimal.NewFromInt(200), Department: "front_desk"},
	}

	got := FinalBalance(decimal.NewFromInt(1000), charges, decimal.NewFromInt(1200))
	assert.True(t, got.Equal(decimal.NewFromInt(300)))
}

// Сценарий из приемки: баланс фолио 1500, одно доначисление 500,
// платеж по умолчанию равен начальному балансу 1500 - итог 500,
// выезд не блокируется (баланс неотрицательный)
func TestFinalBalance_CheckoutScenario(t *testing.T) {
	initialBalance := decimal.NewFromInt(1500)
	charges := []AdditionalCharge{
		{Description: "Ресторан", Amount: decimal.NewFromInt(500), Department: "restaurant"},
	}
	finalPayment := initialBalance

	got := FinalBalance(initialBalance, charges, finalPayment)
	assert.True(t, got.Equal(decimal.NewFromInt(500)))
	assert.False(t, got.IsNegative())
}

func TestSumAdditionalCharges_Empty(t *testing.T) {
	assert.True(t, SumAdditionalCharges(nil).IsZero())
}
