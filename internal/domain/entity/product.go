package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una tienda.
// El stock se descuenta en la creación de ventas, dentro de la misma transacción.
type Product struct {
	ID            string
	ShopID        string
	ProductName   string
	ProductCode   string
	Description   string
	Category      string
	Unit          string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
