package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo de la lista. UserID es el dueño (opcional).
type Item struct {
	ID        string
	Name      string
	Quantity  decimal.Decimal
	UserID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone devuelve una copia sin memoria compartida.
func (i *Item) Clone() *Item {
	c := *i
	if i.UserID != nil {
		id := *i.UserID
		c.UserID = &id
	}
	return &c
}
