package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PermissionRepository define el puerto de lectura/siembra para Permission.
// Los permisos son data de referencia: se siembran en deploy y no se crean vía API.
type PermissionRepository interface {
	ListAll() ([]*entity.Permission, error)
	// GetByIDs devuelve solo los permisos existentes entre los IDs pedidos.
	GetByIDs(ids []string) ([]*entity.Permission, error)
	// Seed inserta las filas del catálogo que falten (idempotente por key).
	Seed(perms []*entity.Permission) error
}
