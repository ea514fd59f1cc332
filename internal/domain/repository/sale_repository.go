package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus items.
type SaleRepository interface {
	// Create inserta la cabecera. Los items van por CreateItem dentro de la misma tx.
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByIDForShop(id, shopID string) (*entity.Sale, error)
	// ItemsOf carga las líneas de una venta.
	ItemsOf(saleID string) ([]entity.SaleItem, error)
	ListByShop(shopID string, limit, offset int) ([]*entity.Sale, error)
}

// StockMovementRepository registra entradas/salidas de stock para auditoría.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
}
