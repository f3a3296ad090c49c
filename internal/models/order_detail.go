package models

// OrderDetail is an order line item: a sandwich quantity within an order.
type OrderDetail struct {
	ID         int64 `gorm:"primaryKey" json:"id"`
	OrderID    int64 `gorm:"not null;index" json:"order_id"`
	SandwichID int64 `gorm:"not null;index" json:"sandwich_id"`
	Amount     int   `gorm:"not null" json:"amount"`
}

type OrderDetailCreate struct {
	OrderID    *int64 `json:"order_id" validate:"required"`
	SandwichID *int64 `json:"sandwich_id" validate:"required"`
	Amount     *int   `json:"amount" validate:"required"`
}

type OrderDetailUpdate struct {
	OrderID    *int64 `json:"order_id"`
	SandwichID *int64 `json:"sandwich_id"`
	Amount     *int   `json:"amount"`
}

// Model must only be called on a validated payload.
func (p OrderDetailCreate) Model() OrderDetail {
	return OrderDetail{
		OrderID:    *p.OrderID,
		SandwichID: *p.SandwichID,
		Amount:     *p.Amount,
	}
}

func (p OrderDetailUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if p.OrderID != nil {
		fields["order_id"] = *p.OrderID
	}
	if p.SandwichID != nil {
		fields["sandwich_id"] = *p.SandwichID
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	return fields
}
