package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, shop_id, product_name, product_code, description, category, unit, purchase_price, selling_price, current_stock, min_stock_level, max_stock_level, is_active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ShopID, product.ProductName, product.ProductCode, product.Description,
		product.Category, product.Unit, product.PurchasePrice, product.SellingPrice,
		product.CurrentStock, product.MinStockLevel, product.MaxStockLevel, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDForShop devuelve el producto solo si pertenece a la tienda.
func (r *ProductRepo) GetByIDForShop(id, shopID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND shop_id = $2`
	return r.scanOne(context.Background(), query, id, shopID)
}

// GetByShopAndCode obtiene un producto por tienda y código.
func (r *ProductRepo) GetByShopAndCode(shopID, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE shop_id = $1 AND product_code = $2`
	return r.scanOne(context.Background(), query, shopID, code)
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.ShopID, &p.ProductName, &p.ProductCode, &p.Description,
		&p.Category, &p.Unit, &p.PurchasePrice, &p.SellingPrice,
		&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET product_name = $3, product_code = $4, description = $5, category = $6, unit = $7,
			purchase_price = $8, selling_price = $9, current_stock = $10, min_stock_level = $11, max_stock_level = $12, updated_at = $13
		WHERE id = $1 AND shop_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ShopID, product.ProductName, product.ProductCode, product.Description,
		product.Category, product.Unit, product.PurchasePrice, product.SellingPrice,
		product.CurrentStock, product.MinStockLevel, product.MaxStockLevel, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate baja lógica: el producto deja de listarse pero las ventas
// históricas lo siguen referenciando.
func (r *ProductRepo) Deactivate(id, shopID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1 AND shop_id = $2`,
		id, shopID,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// ListByShop lista productos activos de la tienda con paginación.
func (r *ProductRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE shop_id = $1 AND is_active = true
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ShopID, &p.ProductName, &p.ProductCode, &p.Description,
			&p.Category, &p.Unit, &p.PurchasePrice, &p.SellingPrice,
			&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DecrementStock descuenta stock dentro de la transacción de venta. El WHERE
// exige stock suficiente: cero filas afectadas = stock insuficiente y la
// transacción completa se revierte.
func (r *ProductRepo) DecrementStock(id, shopID string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE products SET current_stock = current_stock - $3, updated_at = now()
		WHERE id = $1 AND shop_id = $2 AND current_stock >= $3`,
		id, shopID, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
