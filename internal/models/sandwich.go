package models

// Sandwich is a catalog entry
type Sandwich struct {
	ID           int64   `gorm:"primaryKey" json:"id"`
	SandwichName string  `gorm:"size:100;not null" json:"sandwich_name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

type SandwichCreate struct {
	SandwichName *string  `json:"sandwich_name" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
}

type SandwichUpdate struct {
	SandwichName *string  `json:"sandwich_name"`
	Price        *float64 `json:"price"`
}

func (p SandwichCreate) Model() Sandwich {
	return Sandwich{
		SandwichName: *p.SandwichName,
		Price:        *p.Price,
	}
}

func (p SandwichUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if p.SandwichName != nil {
		fields["sandwich_name"] = *p.SandwichName
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	return fields
}
