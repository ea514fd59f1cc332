package sales

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción de venta.
type TxRepos struct {
	Sales     repository.SaleRepository
	Movements repository.StockMovementRepository
	Products  repository.ProductRepository
}

// SaleTxRunner ejecuta el alta de venta en una transacción: cabecera, items,
// descuento de stock y movimientos se confirman todos o ninguno.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(repos TxRepos) error) error
}
