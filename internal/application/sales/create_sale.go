package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase registro y consulta de ventas. El alta es transaccional: cabecera,
// líneas, descuento de stock y movimiento de auditoría caen juntos si algo
// falla a mitad.
type UseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	tx          SaleTxRunner
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, tx SaleTxRunner) *UseCase {
	return &UseCase{saleRepo: saleRepo, productRepo: productRepo, tx: tx}
}

// invoiceNumber genera el consecutivo de factura a partir del reloj.
func invoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}

// Create registra una venta completa para la tienda del llamador.
//
// Valida fuera de la transacción que cada producto exista en la tienda y
// tenga stock suficiente; dentro de ella inserta cabecera, items, descuenta
// stock y deja un movimiento "out" por cada línea.
func (uc *UseCase) Create(ctx context.Context, caller *entity.User, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByIDForShop(item.ProductID, caller.ShopID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CurrentStock < item.Quantity {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		ShopID:         caller.ShopID,
		InvoiceNumber:  invoiceNumber(now),
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		SaleDate:       in.SaleDate,
		Subtotal:       in.Subtotal,
		TaxAmount:      in.TaxAmount,
		DiscountAmount: in.DiscountAmount,
		TotalAmount:    in.TotalAmount,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  in.PaymentStatus,
		Notes:          in.Notes,
		CreatedBy:      caller.ID,
		CreatedAt:      now,
	}

	err := uc.tx.RunSale(ctx, func(repos TxRepos) error {
		if err := repos.Sales.Create(sale); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.TotalPrice,
			}
			if err := repos.Sales.CreateItem(line); err != nil {
				return err
			}
			if err := repos.Products.DecrementStock(item.ProductID, caller.ShopID, item.Quantity); err != nil {
				return err
			}
			movement := &entity.StockMovement{
				ID:            uuid.New().String(),
				ShopID:        caller.ShopID,
				ProductID:     item.ProductID,
				MovementType:  entity.MovementOut,
				Quantity:      item.Quantity,
				ReferenceType: "sale",
				ReferenceID:   sale.ID,
				CreatedBy:     caller.ID,
				CreatedAt:     now,
			}
			if err := repos.Movements.Create(movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateSaleResponse{
		Message:       "Venta registrada exitosamente",
		SaleID:        sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
	}, nil
}

// Get devuelve la venta con sus líneas; de otra tienda = not-found.
func (uc *UseCase) Get(shopID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByIDForShop(id, shopID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ItemsOf(sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	out := toSaleResponse(sale, true)
	return &out, nil
}

// List lista las ventas de la tienda, sin líneas, con paginación.
func (uc *UseCase) List(shopID string, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByShop(shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s, false))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale, withItems bool) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:             s.ID,
		ShopID:         s.ShopID,
		InvoiceNumber:  s.InvoiceNumber,
		CustomerID:     s.CustomerID,
		CustomerName:   s.CustomerName,
		SaleDate:       s.SaleDate,
		Subtotal:       s.Subtotal,
		TaxAmount:      s.TaxAmount,
		DiscountAmount: s.DiscountAmount,
		TotalAmount:    s.TotalAmount,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  s.PaymentStatus,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
	if withItems {
		for _, item := range s.Items {
			out.Items = append(out.Items, dto.SaleItemResponse{
				ID:          item.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.TotalPrice,
			})
		}
	}
	return out
}
