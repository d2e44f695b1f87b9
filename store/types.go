// Package store holds the example domain entities used by the propmapper
// examples and tests.
package store

import (
	"time"
)

// Customer is the domain entity for a store account.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	IsActive  bool
	CreatedAt time.Time

	// passwordHash never leaves the domain layer; unexported fields are
	// invisible to the copier.
	passwordHash string
}

// Product represents an individual item available for sale. Price is kept
// in cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Inventory   int
	CreatedAt   time.Time
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64
	CustomerID int64
	Status     OrderStatus
	TotalCents int64
	OrderedAt  time.Time
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
