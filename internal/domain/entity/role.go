package entity

import "time"

// Role agrupa permisos dentro de una tienda. ShopID nil solo ocurre en roles
// creados durante el onboarding, antes de que exista la tienda ("roles
// globales"). La unicidad de nombre se valida dentro del mismo scope:
// nil contra nil, tienda contra la misma tienda.
type Role struct {
	ID          string
	ShopID      *string
	Name        string
	Description string
	IsSystem    bool // los roles de sistema no se pueden eliminar
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission es data de referencia inmutable: se siembra una vez desde el
// catálogo y nunca se crea vía API.
type Permission struct {
	ID          string
	Key         string // estable, ej. "view_products"
	Name        string
	Category    string
	Description string
}

// RolePermission join rol-permiso, sin payload. El par (RoleID, PermissionID)
// aparece a lo sumo una vez.
type RolePermission struct {
	RoleID       string
	PermissionID string
}
