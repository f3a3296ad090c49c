package models

// All lists every persisted entity in migration order.
func All() []any {
	return []any{
		&Sandwich{},
		&Resource{},
		&Recipe{},
		&Order{},
		&OrderDetail{},
	}
}
