package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// AssignShop fija el shop_id del usuario tras crear su tienda.
	AssignShop(userID, shopID string) error
	ListByShop(shopID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// FindByID y FindByEmail alias semánticos para uso en auth.
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// CurrentShopID re-lee el shop_id vigente en BD. Cubre la ventana entre
	// la creación de la tienda y el refresco del token en el cliente.
	CurrentShopID(ctx context.Context, userID string) (string, error)
}
