package authz

import (
	"context"
	"sort"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PermissionSet set resuelto de permission keys de un usuario.
type PermissionSet map[string]struct{}

// Has informa si el set contiene la key.
func (s PermissionSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys devuelve las keys ordenadas (para respuestas y tests deterministas).
func (s PermissionSet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Engine resuelve usuario -> set efectivo de permisos. La decisión se calcula
// fresca en cada request: no hay caché, así los cambios de rol aplican al
// siguiente request sin re-login.
type Engine struct {
	catalog *Catalog
	roles   repository.RoleRepository
}

// NewEngine construye el motor con el catálogo inyectado.
func NewEngine(catalog *Catalog, roles repository.RoleRepository) *Engine {
	return &Engine{catalog: catalog, roles: roles}
}

// PermissionsFor calcula el set efectivo según el modo de autorización:
//   - ModeAdmin: todas las keys del catálogo, ignorando grants por rol. Regla
//     dura: un rol vacío asignado a un admin no recorta nada.
//   - ModeRole: las keys del rol asignado, filtrado por visibilidad de tienda
//     (un rol de otra tienda nunca resuelve para este usuario). Rol sin
//     grants = set vacío, no error.
//   - ModeNone: set vacío.
func (e *Engine) PermissionsFor(ctx context.Context, user *entity.User) (PermissionSet, error) {
	set := make(PermissionSet)
	switch user.AuthzModeOf() {
	case entity.ModeAdmin:
		for _, k := range e.catalog.AllKeys() {
			set[k] = struct{}{}
		}
	case entity.ModeRole:
		keys, err := e.roles.PermissionKeys(ctx, *user.RoleID, user.ShopID)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			set[k] = struct{}{}
		}
	}
	return set, nil
}

// Catalog expone el catálogo inyectado (para handlers que listan permisos).
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
