package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (tenant).
// Las tiendas nunca se eliminan en este alcance.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
}
