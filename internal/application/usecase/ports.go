package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// GrantTxRunner ejecuta operaciones de rol dentro de una transacción de BD.
// El reemplazo de grants es delete + insert: sin transacción, un lector
// concurrente podría observar el estado intermedio vacío. Envolverlo aquí
// elimina esa ventana.
type GrantTxRunner interface {
	RunGrants(ctx context.Context, fn func(roles repository.RoleRepository) error) error
}
