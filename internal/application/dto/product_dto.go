package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductName   string          `json:"product_name" validate:"required,min=1,max=200"`
	ProductCode   string          `json:"product_code" validate:"omitempty,max=100"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	Unit          string          `json:"unit" validate:"omitempty,max=50"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price" validate:"required"`
	CurrentStock  int             `json:"current_stock" validate:"min=0"`
	MinStockLevel int             `json:"min_stock_level" validate:"min=0"`
	MaxStockLevel int             `json:"max_stock_level" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	ProductName   *string          `json:"product_name"`
	ProductCode   *string          `json:"product_code"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	CurrentStock  *int             `json:"current_stock"`
	MinStockLevel *int             `json:"min_stock_level"`
	MaxStockLevel *int             `json:"max_stock_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shop_id"`
	ProductName   string          `json:"product_name"`
	ProductCode   string          `json:"product_code,omitempty"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
