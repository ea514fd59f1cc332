package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByIDForShop(id, shopID string) (*entity.Customer, error)
	ListByShop(shopID string, limit, offset int) ([]*entity.Customer, error)
}
