package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

// Transaction is the append-only record derived from a selected order.
type Transaction struct {
	ID                  string
	OrderID             OrderID
	WaiterID            uint64
	FoodName            string
	UnitPrice           decimal.Decimal
	Quantity            int
	TotalPrice          decimal.Decimal
	CustomerName        string
	CustomerPhoneNumber string
	CreatedAt           time.Time
}

// NewTransaction prices order at unit. TotalPrice is exactly unit * quantity.
func NewTransaction(order Order, unit decimal.Decimal, waiterID uint64) (*Transaction, error) {
	qty, err := decimal.New(int64(order.Quantity), 0)
	if err != nil {
		return nil, fmt.Errorf("quantity %d: %w", order.Quantity, err)
	}
	total, err := unit.Mul(qty)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}

	return &Transaction{
		OrderID:             order.ID,
		WaiterID:            waiterID,
		FoodName:            order.FoodName,
		UnitPrice:           unit,
		Quantity:            order.Quantity,
		TotalPrice:          total,
		CustomerName:        order.CustomerName,
		CustomerPhoneNumber: order.CustomerPhoneNumber,
		CreatedAt:           time.Now(),
	}, nil
}
