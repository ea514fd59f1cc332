package authz

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Gate es el chequeo reusable que toda operación de lectura/mutación invoca
// antes de tocar data de una tienda. Las permission keys otorgan capacidad
// DENTRO de un tenant; nunca acceso entre tenants — esa invariante vive aquí,
// no en el motor.
type Gate struct {
	engine *Engine
}

// NewGate construye la puerta de autorización.
func NewGate(engine *Engine) *Gate {
	return &Gate{engine: engine}
}

// Authorize verifica que el usuario tenga la permission key requerida.
// Devuelve domain.ErrPermissionDenied si el set efectivo no la contiene.
func (g *Gate) Authorize(ctx context.Context, user *entity.User, key string) error {
	set, err := g.engine.PermissionsFor(ctx, user)
	if err != nil {
		return err
	}
	if !set.Has(key) {
		return domain.ErrPermissionDenied
	}
	return nil
}

// AuthorizeForShop verifica tenencia y permiso. El cruce de tienda se reporta
// como ErrNotFound, nunca como ErrPermissionDenied: no se confirma a un
// tenant ajeno que el recurso existe. El admin también queda acotado a su
// propia tienda aunque salte el chequeo de permisos.
func (g *Gate) AuthorizeForShop(ctx context.Context, user *entity.User, shopID, key string) error {
	if user.ShopID == "" || user.ShopID != shopID {
		return domain.ErrNotFound
	}
	return g.Authorize(ctx, user, key)
}
