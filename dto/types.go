// Package dto holds the example transfer objects used by the propmapper
// examples and tests. Each type mirrors a store entity field-for-field
// except where noted.
package dto

// Customer is the transfer representation of a store customer. Surname is
// populated from the entity's LastName through a mapping override.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	Surname   string
	IsActive  bool
}

// Product is the transfer representation of a store product. Inventory is
// deliberately absent: transfer objects do not expose stock levels.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64
}

// Order is the transfer representation of a store order. Status is a plain
// string here, so it does not match the entity's OrderStatus field by
// direct assignment and stays zero unless registered manually.
type Order struct {
	ID         int64
	CustomerID int64
	Status     string
	TotalCents int64
}
