package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByIDForShop devuelve el producto solo si pertenece a la tienda.
	GetByIDForShop(id, shopID string) (*entity.Product, error)
	GetByShopAndCode(shopID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate baja lógica (is_active = false); las ventas históricas lo siguen referenciando.
	Deactivate(id, shopID string) error
	ListByShop(shopID string, limit, offset int) ([]*entity.Product, error)
	// DecrementStock descuenta stock dentro de la transacción de venta.
	DecrementStock(id, shopID string, quantity int) error
}
