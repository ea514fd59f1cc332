package authz

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/token"
)

// Resolver calcula la tienda activa de la request a partir de la sesión
// verificada. Si el token trae shop vacío (emitido antes de crear la tienda),
// re-consulta la BD: cubre la ventana entre la creación de la tienda y el
// refresco del token en el cliente. El servidor ya reemite el token al crear
// la tienda, pero el cliente puede no haberlo aplicado todavía.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver construye el resolver de tenencia.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve devuelve el shopID activo o domain.ErrNoShop si el usuario sigue en
// pre-onboarding. ErrNoShop es un error de cliente distinguible: "termina el
// onboarding", no "vuelve a iniciar sesión".
func (r *Resolver) Resolve(ctx context.Context, s *token.Session) (string, error) {
	if s.ShopID != "" {
		return s.ShopID, nil
	}
	shopID, err := r.users.CurrentShopID(ctx, s.UserID)
	if err != nil {
		return "", err
	}
	if shopID == "" {
		return "", domain.ErrNoShop
	}
	return shopID, nil
}
