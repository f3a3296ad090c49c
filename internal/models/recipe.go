package models

// Recipe links a resource quantity to a sandwich
type Recipe struct {
	ID         int64 `gorm:"primaryKey" json:"id"`
	SandwichID int64 `gorm:"not null;index" json:"sandwich_id"`
	ResourceID int64 `gorm:"not null;index" json:"resource_id"`
	Amount     int   `gorm:"not null" json:"amount"`
}

type RecipeCreate struct {
	SandwichID *int64 `json:"sandwich_id" validate:"required"`
	ResourceID *int64 `json:"resource_id" validate:"required"`
	Amount     *int   `json:"amount" validate:"required"`
}

type RecipeUpdate struct {
	SandwichID *int64 `json:"sandwich_id"`
	ResourceID *int64 `json:"resource_id"`
	Amount     *int   `json:"amount"`
}

func (p RecipeCreate) Model() Recipe {
	return Recipe{
		SandwichID: *p.SandwichID,
		ResourceID: *p.ResourceID,
		Amount:     *p.Amount,
	}
}

func (p RecipeUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if p.SandwichID != nil {
		fields["sandwich_id"] = *p.SandwichID
	}
	if p.ResourceID != nil {
		fields["resource_id"] = *p.ResourceID
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	return fields
}
