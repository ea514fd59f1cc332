package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RoleSummary rol con su cantidad de permisos, para listados.
type RoleSummary struct {
	Role            entity.Role
	PermissionCount int
}

// RoleRepository define el puerto de persistencia para Role y sus grants.
// Todas las lecturas por ID filtran por visibilidad de tienda: un rol de otra
// tienda no existe para el llamador (se devuelve nil, no un error distinto).
type RoleRepository interface {
	Create(role *entity.Role) error
	// GetVisible devuelve el rol solo si es global (shop_id IS NULL) o
	// pertenece a la tienda dada. nil si no es visible.
	GetVisible(id, shopID string) (*entity.Role, error)
	// GetByNameInScope busca por nombre dentro de un scope: nil compara
	// contra roles globales, no-nil contra la tienda exacta.
	GetByNameInScope(name string, shopID *string) (*entity.Role, error)
	ListByScope(shopID *string) ([]*RoleSummary, error)
	Update(role *entity.Role) error
	// Delete elimina el rol; los grants caen en cascada.
	Delete(id string) error

	// PermissionsOf lista los permisos concedidos al rol.
	PermissionsOf(roleID string) ([]*entity.Permission, error)
	// PermissionKeys resuelve las keys efectivas de un rol visible para la
	// tienda dada. Es el camino caliente de autorización (una vez por request).
	PermissionKeys(ctx context.Context, roleID, shopID string) ([]string, error)
	// ReplaceGrants reemplaza los grants al completo (delete + insert). Debe
	// invocarse a través del runner transaccional para que ningún lector
	// observe el estado intermedio vacío.
	ReplaceGrants(roleID string, permissionIDs []string) error
}
