package domain

import "time"

// Guest персона: проживающий гость или заказчик
// Заказчик может бронировать для другого проживающего (разные роли
// на бронировании: CustomerID и GuestID)
type Guest struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Nationality    *string
	DocumentType   *string
	DocumentNumber *string
	Address        *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the display name of the guest
func (g *Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// GuestsFilter фильтр для списка гостей
type GuestsFilter struct {
	Page  int64
	Limit int64
}
