package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

func TestEffectiveBalanceDue_ComputedWhenNotStored(t *testing.T) {
	b := &Booking{
		TotalAmount:      decimal.NewFromInt(10000),
		AdvancePayment:   decimal.NewFromInt(1000),
		PaymentsTotal:    decimal.NewFromInt(2500),
		AdjustmentsTotal: decimal.NewFromInt(500),
	}

	// 10000 - (1000 + 2500 + 500) = 6000
	assert.True(t, b.EffectiveBalanceDue().Equal(decimal.NewFromInt(6000)))
}

func TestEffectiveBalanceDue_StoredValueWins(t *testing.T) {
	b := &Booking{
		TotalAmount:    decimal.NewFromInt(10000),
		AdvancePayment: decimal.NewFromInt(1000),
		BalanceDue:     ptr.Ptr(decimal.NewFromInt(4200)),
	}

	assert.True(t, b.EffectiveBalanceDue().Equal(decimal.NewFromInt(4200)))
}

func TestBookingLifecyclePredicates(t *testing.T) {
	b := &Booking{Status: StatusBooked}
	assert.True(t, b.CanCheckIn())
	assert.False(t, b.CanCheckOut())
	assert.True(t, b.CanAssignRoom())

	b.Status = StatusCheckedIn
	assert.False(t, b.CanCheckIn())
	assert.True(t, b.CanCheckOut())
	assert.True(t, b.IsActive())

	b.Status = StatusCheckedOut
	assert.False(t, b.IsActive())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanAssignRoom())
}

func TestDateRangesOverlap_CheckoutDayDoesNotConflict(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC) }

	// Выезд 10-го, заезд следующего гостя 10-го - не конфликт
	assert.False(t, DateRangesOverlap(day(5), day(10), day(10), day(12)))
	assert.True(t, DateRangesOverlap(day(5), day(10), day(9), day(12)))
	assert.True(t, DateRangesOverlap(day(5), day(10), day(6), day(7)))
	assert.False(t, DateRangesOverlap(day(5), day(10), day(12), day(14)))
}
