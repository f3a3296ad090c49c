package models

// Resource is an inventory item consumed by recipes
type Resource struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Item   string `gorm:"size:100;not null" json:"item"`
	Amount int    `gorm:"not null" json:"amount"`
}

type ResourceCreate struct {
	Item   *string `json:"item" validate:"required"`
	Amount *int    `json:"amount" validate:"required"`
}

type ResourceUpdate struct {
	Item   *string `json:"item"`
	Amount *int    `json:"amount"`
}

func (p ResourceCreate) Model() Resource {
	return Resource{
		Item:   *p.Item,
		Amount: *p.Amount,
	}
}

func (p ResourceUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Item != nil {
		fields["item"] = *p.Item
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	return fields
}
