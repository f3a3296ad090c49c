package models

import "time"

// Order is a customer order. Its line items are the OrderDetail rows
// pointing at it; they are read-only on this type.
type Order struct {
	ID           int64         `gorm:"primaryKey" json:"id"`
	CustomerName string        `gorm:"size:100" json:"customer_name"`
	Description  string        `gorm:"size:300" json:"description"`
	OrderDate    time.Time     `gorm:"autoCreateTime" json:"order_date"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details"`
}

// OrderCreate is the body of POST /orders/
type OrderCreate struct {
	CustomerName *string `json:"customer_name"`
	Description  *string `json:"description"`
}

// OrderUpdate is the body of PUT /orders/{id}
type OrderUpdate struct {
	CustomerName *string `json:"customer_name"`
	Description  *string `json:"description"`
}

func (p OrderCreate) Model() Order {
	var o Order
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	return o
}

// Fields returns the columns present in the payload.
func (p OrderUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if p.CustomerName != nil {
		fields["customer_name"] = *p.CustomerName
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	return fields
}
