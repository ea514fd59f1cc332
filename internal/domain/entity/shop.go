package entity

import "time"

// Shop representa una tienda (tenant). Toda la data de dominio se particiona
// por ShopID. Un admin crea exactamente una tienda durante el onboarding.
type Shop struct {
	ID           string
	ShopName     string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	BusinessType string
	TaxID        string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
