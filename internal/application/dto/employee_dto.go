package dto

import "time"

// CreateEmployeeRequest entrada para que el admin cree un empleado de su tienda.
type CreateEmployeeRequest struct {
	FullName string  `json:"full_name" validate:"required,min=1,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	RoleID   *string `json:"role_id" validate:"omitempty,uuid"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado. Password vacío no
// cambia la contraseña; RoleID presente (aunque vacío) reasigna el rol.
type UpdateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	RoleID   *string `json:"role_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	RoleID    *string   `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
