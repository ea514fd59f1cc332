package entity

import "time"

// Roles gruesos (legado) para User. El admin salta todos los permisos por
// rol; para el resto manda RoleID cuando está presente.
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleSalesperson = "salesperson"
	RoleDeliveryMan = "delivery_man"
	RoleEmployee    = "employee"
)

// AuthzMode modo de autorización resuelto para un usuario.
type AuthzMode int

const (
	// ModeAdmin el usuario salta los grants por rol: set efectivo = catálogo completo.
	ModeAdmin AuthzMode = iota
	// ModeRole el set efectivo sale de los grants del rol asignado (RoleID).
	ModeRole
	// ModeNone sin rol asignado: set efectivo vacío.
	ModeNone
)

// User representa un usuario del sistema. ShopID vacío = aún sin tienda
// (onboarding). RoleID nil = sin rol RBAC asignado.
type User struct {
	ID           string
	ShopID       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string  // admin, manager, salesperson, delivery_man, employee
	RoleID       *string // asignación RBAC fina; tiene precedencia sobre Role para no-admins
	IsFirstLogin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthzModeOf centraliza la decisión admin-bypass vs rol asignado.
// Es el único lugar del sistema donde se ramifica sobre Role == admin.
func (u *User) AuthzModeOf() AuthzMode {
	if u.Role == RoleAdmin {
		return ModeAdmin
	}
	if u.RoleID != nil && *u.RoleID != "" {
		return ModeRole
	}
	return ModeNone
}

// HasShop informa si el usuario ya completó el onboarding.
func (u *User) HasShop() bool {
	return u.ShopID != ""
}
