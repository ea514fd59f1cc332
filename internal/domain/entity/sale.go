package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Se crea junto con sus items, el descuento de
// stock y el movimiento de stock en una sola transacción (todo o nada).
type Sale struct {
	ID             string
	ShopID         string
	InvoiceNumber  string
	CustomerID     *string
	CustomerName   string
	SaleDate       time.Time
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  string
	PaymentStatus  string
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	Items          []SaleItem
}

// SaleItem línea de venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Tipos de movimiento de stock.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement registro de auditoría de cada entrada/salida de stock.
type StockMovement struct {
	ID            string
	ShopID        string
	ProductID     string
	MovementType  string // in, out
	Quantity      int
	ReferenceType string // sale, adjustment
	ReferenceID   string
	CreatedBy     string
	CreatedAt     time.Time
}
