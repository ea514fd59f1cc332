package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta en la creación.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required,uuid"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
	TotalPrice  decimal.Decimal `json:"total_price" validate:"required"`
}

// CreateSaleRequest entrada para registrar una venta completa.
type CreateSaleRequest struct {
	CustomerID     *string           `json:"customer_id" validate:"omitempty,uuid"`
	CustomerName   string            `json:"customer_name" validate:"omitempty,max=200"`
	SaleDate       time.Time         `json:"sale_date" validate:"required"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	TotalAmount    decimal.Decimal   `json:"total_amount" validate:"required"`
	PaymentMethod  string            `json:"payment_method" validate:"omitempty,max=50"`
	PaymentStatus  string            `json:"payment_status" validate:"omitempty,max=50"`
	Notes          string            `json:"notes" validate:"omitempty,max=1000"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             string             `json:"id"`
	ShopID         string             `json:"shop_id"`
	InvoiceNumber  string             `json:"invoice_number"`
	CustomerID     *string            `json:"customer_id"`
	CustomerName   string             `json:"customer_name,omitempty"`
	SaleDate       time.Time          `json:"sale_date"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	PaymentStatus  string             `json:"payment_status,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	Items          []SaleItemResponse `json:"items,omitempty"`
}

// CreateSaleResponse confirmación de la venta creada.
type CreateSaleResponse struct {
	Message       string `json:"message"`
	SaleID        string `json:"sale_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
