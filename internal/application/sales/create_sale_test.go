package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	shopA = "00000000-0000-0000-0000-00000000000a"
	shopB = "00000000-0000-0000-0000-00000000000b"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]entity.SaleItem
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]entity.SaleItem{}}
}

func (f *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	f.sales[sale.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	f.items[item.SaleID] = append(f.items[item.SaleID], *item)
	return nil
}

func (f *fakeSaleRepo) GetByIDForShop(id, shopID string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.ShopID != shopID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) ItemsOf(saleID string) ([]entity.SaleItem, error) {
	return f.items[saleID], nil
}

func (f *fakeSaleRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.ShopID == shopID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByIDForShop(id, shopID string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.ShopID != shopID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByShopAndCode(shopID, code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ShopID == shopID && p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Deactivate(id, shopID string) error {
	if p, ok := f.products[id]; ok && p.ShopID == shopID {
		p.IsActive = false
	}
	return nil
}

func (f *fakeProductRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.ShopID == shopID && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DecrementStock(id, shopID string, quantity int) error {
	p, ok := f.products[id]
	if !ok || p.ShopID != shopID {
		return domain.ErrNotFound
	}
	p.CurrentStock -= quantity
	return nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, *m)
	return nil
}

// fakeTxRunner ejecuta el callback sobre los mismos fakes y, si falla, revierte
// reponiendo una copia previa del estado.
type fakeTxRunner struct {
	sales     *fakeSaleRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
	runs      int
}

var _ sales.SaleTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) RunSale(_ context.Context, fn func(repos sales.TxRepos) error) error {
	f.runs++
	beforeSales := map[string]*entity.Sale{}
	for k, v := range f.sales.sales {
		cp := *v
		beforeSales[k] = &cp
	}
	beforeProducts := map[string]*entity.Product{}
	for k, v := range f.products.products {
		cp := *v
		beforeProducts[k] = &cp
	}
	beforeMovs := append([]entity.StockMovement(nil), f.movements.movements...)

	err := fn(sales.TxRepos{Sales: f.sales, Movements: f.movements, Products: f.products})
	if err != nil {
		f.sales.sales = beforeSales
		f.sales.items = map[string][]entity.SaleItem{}
		f.products.products = beforeProducts
		f.movements.movements = beforeMovs
	}
	return err
}

func newHarness() (*sales.UseCase, *fakeSaleRepo, *fakeProductRepo, *fakeMovementRepo, *fakeTxRunner) {
	saleRepo := newFakeSaleRepo()
	productRepo := newFakeProductRepo()
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{sales: saleRepo, products: productRepo, movements: movRepo}
	return sales.NewUseCase(saleRepo, productRepo, tx), saleRepo, productRepo, movRepo, tx
}

func seedProduct(repo *fakeProductRepo, id string, stock int) {
	repo.products[id] = &entity.Product{
		ID: id, ShopID: shopA, ProductName: "Café 500g", ProductCode: "CAF-500",
		CurrentStock: stock, MinStockLevel: 2, IsActive: true,
		SellingPrice: decimal.NewFromInt(12),
	}
}

func saleRequest(productID string, qty int) dto.CreateSaleRequest {
	unit := decimal.NewFromInt(12)
	total := unit.Mul(decimal.NewFromInt(int64(qty)))
	return dto.CreateSaleRequest{
		SaleDate:    time.Now(),
		Subtotal:    total,
		TotalAmount: total,
		Items: []dto.SaleItemRequest{{
			ProductID: productID, ProductName: "Café 500g",
			Quantity: qty, UnitPrice: unit, TotalPrice: total,
		}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de venta
// ──────────────────────────────────────────────────────────────────────────────

// Venta válida: cabecera, línea, stock descontado y movimiento "out".
func TestCreateSale_DescuentaStockYRegistraMovimiento(t *testing.T) {
	uc, saleRepo, productRepo, movRepo, tx := newHarness()
	seedProduct(productRepo, "p1", 10)
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	resp, err := uc.Create(context.Background(), caller, saleRequest("p1", 3))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.SaleID)
	assert.Regexp(t, `^INV-\d+$`, resp.InvoiceNumber)

	assert.Equal(t, 7, productRepo.products["p1"].CurrentStock)
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementOut, movRepo.movements[0].MovementType)
	assert.Equal(t, resp.SaleID, movRepo.movements[0].ReferenceID)
	assert.Equal(t, "sale", movRepo.movements[0].ReferenceType)
	require.Len(t, saleRepo.items[resp.SaleID], 1)
	assert.Equal(t, 1, tx.runs, "el alta debe correr dentro de la transacción")
}

// Stock insuficiente: se rechaza antes de tocar la transacción.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	uc, _, productRepo, movRepo, tx := newHarness()
	seedProduct(productRepo, "p1", 2)
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), caller, saleRequest("p1", 5))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 2, productRepo.products["p1"].CurrentStock)
	assert.Empty(t, movRepo.movements)
	assert.Zero(t, tx.runs)
}

// Producto de otra tienda: not-found, nunca se filtra que existe.
func TestCreateSale_ProductoDeOtraTienda(t *testing.T) {
	uc, _, productRepo, _, _ := newHarness()
	seedProduct(productRepo, "p1", 10)
	productRepo.products["p1"].ShopID = shopB
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), caller, saleRequest("p1", 1))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Venta sin líneas: entrada inválida.
func TestCreateSale_SinItems(t *testing.T) {
	uc, _, _, _, _ := newHarness()
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	req := saleRequest("p1", 1)
	req.Items = nil
	_, err := uc.Create(context.Background(), caller, req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Fallo a mitad de transacción: nada queda persistido.
func TestCreateSale_FalloEnTransaccionRevierteTodo(t *testing.T) {
	uc, saleRepo, productRepo, movRepo, tx := newHarness()
	seedProduct(productRepo, "p1", 10)
	// Segundo producto inexistente en el repo: DecrementStock fallará tras
	// haber insertado la primera línea.
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	req := saleRequest("p1", 3)
	req.Items = append(req.Items, dto.SaleItemRequest{
		ProductID: "p1", ProductName: "Café 500g",
		Quantity: 4, UnitPrice: decimal.NewFromInt(12), TotalPrice: decimal.NewFromInt(48),
	})
	// Forzar el fallo dentro de la tx quitando el producto después de la
	// validación previa no es posible con fakes síncronos, así que se simula
	// con un runner que inyecta el error en la segunda línea.
	boom := errors.New("boom")
	failing := &failingMovementRepo{inner: movRepo, failAt: 2, err: boom}
	uc = sales.NewUseCase(saleRepo, productRepo, &failingTxRunner{base: tx, movements: failing})

	_, err := uc.Create(context.Background(), caller, req)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 10, productRepo.products["p1"].CurrentStock, "el stock debe quedar intacto tras el rollback")
	assert.Empty(t, saleRepo.sales)
	assert.Empty(t, movRepo.movements)
}

// failingMovementRepo falla en la n-ésima inserción de movimiento.
type failingMovementRepo struct {
	inner  *fakeMovementRepo
	calls  int
	failAt int
	err    error
}

func (f *failingMovementRepo) Create(m *entity.StockMovement) error {
	f.calls++
	if f.calls == f.failAt {
		return f.err
	}
	return f.inner.Create(m)
}

type failingTxRunner struct {
	base      *fakeTxRunner
	movements *failingMovementRepo
}

func (f *failingTxRunner) RunSale(ctx context.Context, fn func(repos sales.TxRepos) error) error {
	return f.base.RunSale(ctx, func(repos sales.TxRepos) error {
		repos.Movements = f.movements
		return fn(repos)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de ventas
// ──────────────────────────────────────────────────────────────────────────────

// Get carga la venta con sus líneas; de otra tienda responde not-found.
func TestGetSale_AcotadaATienda(t *testing.T) {
	uc, _, productRepo, _, _ := newHarness()
	seedProduct(productRepo, "p1", 10)
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	resp, err := uc.Create(context.Background(), caller, saleRequest("p1", 2))
	require.NoError(t, err)

	got, err := uc.Get(shopA, resp.SaleID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)

	_, err = uc.Get(shopB, resp.SaleID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSales_SoloDeLaTienda(t *testing.T) {
	uc, saleRepo, productRepo, _, _ := newHarness()
	seedProduct(productRepo, "p1", 10)
	caller := &entity.User{ID: "u1", ShopID: shopA, Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), caller, saleRequest("p1", 1))
	require.NoError(t, err)
	saleRepo.sales["ajena"] = &entity.Sale{ID: "ajena", ShopID: shopB}

	list, err := uc.List(shopA, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, shopA, list.Items[0].ShopID)
}
