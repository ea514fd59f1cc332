package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos, siempre acotado a la tienda del llamador.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El código, si viene, es único por tienda.
func (uc *ProductUseCase) Create(shopID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ProductCode != "" {
		existing, err := uc.repo.GetByShopAndCode(shopID, in.ProductCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		ShopID:        shopID,
		ProductName:   in.ProductName,
		ProductCode:   in.ProductCode,
		Description:   in.Description,
		Category:      in.Category,
		Unit:          in.Unit,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  in.CurrentStock,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Get devuelve un producto de la tienda; de otra tienda = not-found.
func (uc *ProductUseCase) Get(shopID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDForShop(id, shopID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update actualiza solo los campos presentes.
func (uc *ProductUseCase) Update(shopID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDForShop(id, shopID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.ProductCode != nil {
		product.ProductCode = *in.ProductCode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.CurrentStock != nil {
		product.CurrentStock = *in.CurrentStock
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		product.MaxStockLevel = *in.MaxStockLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Delete baja lógica: el producto deja de listarse pero las ventas históricas
// lo siguen referenciando.
func (uc *ProductUseCase) Delete(shopID, id string) error {
	product, err := uc.repo.GetByIDForShop(id, shopID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id, shopID)
}

// List lista productos activos de la tienda con paginación.
func (uc *ProductUseCase) List(shopID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByShop(shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		ShopID:        p.ShopID,
		ProductName:   p.ProductName,
		ProductCode:   p.ProductCode,
		Description:   p.Description,
		Category:      p.Category,
		Unit:          p.Unit,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
