package dto

// SignupRequest entrada para registro del dueño de la tienda.
// El usuario nace como admin sin tienda; la tienda se crea en el onboarding.
type SignupRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Role     string  `json:"role"`
	RoleID   *string `json:"role_id,omitempty"`
	ShopID   string  `json:"shop_id,omitempty"`
}

// AuthResponse salida de signup/login: token + usuario + si ya tiene tienda.
// El mismo token viaja en la cookie de sesión; el cuerpo es para clientes que
// manejan cookies manualmente. Los claims firmados son la única fuente de verdad.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	HasShop bool         `json:"has_shop"`
	User    UserResponse `json:"user"`
}

// MeResponse perfil del usuario autenticado con su set efectivo de permisos.
type MeResponse struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	FullName       string   `json:"full_name"`
	Role           string   `json:"role"`
	RoleID         *string  `json:"role_id"`
	RoleName       *string  `json:"role_name"`
	ShopID         string   `json:"shop_id,omitempty"`
	PermissionKeys []string `json:"permission_keys"`
	Authenticated  bool     `json:"authenticated"`
}
