package dto

import "time"

// CreateShopRequest entrada para crear la tienda durante el onboarding.
type CreateShopRequest struct {
	ShopName     string `json:"shop_name" validate:"required,min=1,max=200"`
	OwnerName    string `json:"owner_name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	Address      string `json:"address" validate:"required,max=300"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	ZipCode      string `json:"zip_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"omitempty,max=100"`
	BusinessType string `json:"business_type" validate:"omitempty,max=100"`
	TaxID        string `json:"tax_id" validate:"omitempty,max=50"`
	Currency     string `json:"currency" validate:"omitempty,max=10"`
}

// UpdateShopRequest entrada para actualizar la tienda desde settings.
type UpdateShopRequest struct {
	ShopName     string `json:"shop_name"`
	OwnerName    string `json:"owner_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
	BusinessType string `json:"business_type"`
	TaxID        string `json:"tax_id"`
	Currency     string `json:"currency"`
}

// ShopResponse salida de una tienda.
type ShopResponse struct {
	ID           string    `json:"id"`
	ShopName     string    `json:"shop_name"`
	OwnerName    string    `json:"owner_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ZipCode      string    `json:"zip_code,omitempty"`
	Country      string    `json:"country,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	TaxID        string    `json:"tax_id,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateShopResponse salida de la creación: incluye el token reemitido con el
// shop_id nuevo para que el cliente no dependa del fallback de tenencia.
type CreateShopResponse struct {
	Message string       `json:"message"`
	Shop    ShopResponse `json:"shop"`
	Token   string       `json:"token"`
}
