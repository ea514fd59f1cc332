package dto

import "time"

// CreateRoleRequest entrada para crear un rol, opcionalmente con grants.
type CreateRoleRequest struct {
	RoleName    string   `json:"role_name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,uuid"`
}

// UpdateRoleRequest entrada para renombrar/re-permisar un rol. Permissions nil
// deja los grants como están; no-nil los reemplaza al completo.
type UpdateRoleRequest struct {
	RoleName    string    `json:"role_name"`
	Description string    `json:"description"`
	Permissions *[]string `json:"permissions"`
}

// PermissionResponse salida de un permiso del catálogo persistido.
type PermissionResponse struct {
	ID          string `json:"id"`
	Key         string `json:"permission_key"`
	Name        string `json:"permission_name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// RoleResponse salida de un rol con sus permisos.
type RoleResponse struct {
	ID          string               `json:"id"`
	ShopID      *string              `json:"shop_id"`
	RoleName    string               `json:"role_name"`
	Description string               `json:"description,omitempty"`
	IsSystem    bool                 `json:"is_system"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
}

// RoleListItem rol en listados, con conteo de permisos.
type RoleListItem struct {
	ID              string    `json:"id"`
	ShopID          *string   `json:"shop_id"`
	RoleName        string    `json:"role_name"`
	Description     string    `json:"description,omitempty"`
	IsSystem        bool      `json:"is_system"`
	PermissionCount int       `json:"permission_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// GroupedPermissionsResponse catálogo persistido agrupado por categoría.
type GroupedPermissionsResponse struct {
	Permissions []PermissionResponse            `json:"permissions"`
	Grouped     map[string][]PermissionResponse `json:"grouped"`
}
