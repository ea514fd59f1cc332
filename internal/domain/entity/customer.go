package entity

import "time"

// Customer representa un cliente de una tienda.
type Customer struct {
	ID           string
	ShopID       string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
