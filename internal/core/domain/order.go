package domain

import "time"

type OrderID string

// Order is a customer order waiting at a table. IsViewed only moves from
// false to true.
type Order struct {
	ID                  OrderID
	FoodName            string
	Quantity            int
	TableNumber         string
	CustomerName        string
	CustomerPhoneNumber string
	IsViewed            bool
	CreatedAt           time.Time
}

func (o *Order) Validate() error {
	if o.FoodName == "" || o.CustomerName == "" {
		return ErrInvalidOrder
	}
	if o.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// DetailHandoff is the flat set of values the detail screen receives after a
// waiter picks an order.
type DetailHandoff struct {
	WaiterID            uint64
	WaiterName          string
	OrderID             OrderID
	FoodName            string
	TableNumber         string
	Quantity            int
	CustomerName        string
	CustomerPhoneNumber string
}

func NewDetailHandoff(waiter *Waiter, order Order) DetailHandoff {
	return DetailHandoff{
		WaiterID:            waiter.ID,
		WaiterName:          waiter.Name,
		OrderID:             order.ID,
		FoodName:            order.FoodName,
		TableNumber:         order.TableNumber,
		Quantity:            order.Quantity,
		CustomerName:        order.CustomerName,
		CustomerPhoneNumber: order.CustomerPhoneNumber,
	}
}
