package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CustomerUseCase alta y listado de clientes de la tienda.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente en la tienda del llamador.
func (uc *CustomerUseCase) Create(shopID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	out := toCustomerResponse(customer)
	return &out, nil
}

// Get devuelve un cliente de la tienda; de otra tienda = not-found.
func (uc *CustomerUseCase) Get(shopID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDForShop(id, shopID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	out := toCustomerResponse(customer)
	return &out, nil
}

// List lista clientes de la tienda con paginación.
func (uc *CustomerUseCase) List(shopID string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByShop(shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		ShopID:       c.ShopID,
		CustomerName: c.CustomerName,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		CreatedAt:    c.CreatedAt,
	}
}
