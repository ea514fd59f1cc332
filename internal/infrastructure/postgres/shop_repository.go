package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador de persistencia para tiendas.
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

const shopColumns = `id, shop_name, owner_name, email, phone, address, city, state, zip_code, country, business_type, tax_id, currency, created_at, updated_at`

// Create persiste una nueva tienda.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (` + shopColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.ShopName, shop.OwnerName, shop.Email, shop.Phone,
		shop.Address, shop.City, shop.State, shop.ZipCode, shop.Country,
		shop.BusinessType, shop.TaxID, shop.Currency, shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ShopName, &s.OwnerName, &s.Email, &s.Phone,
		&s.Address, &s.City, &s.State, &s.ZipCode, &s.Country,
		&s.BusinessType, &s.TaxID, &s.Currency, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// Update actualiza los datos de la tienda.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET shop_name = $2, owner_name = $3, email = $4, phone = $5, address = $6, city = $7,
			state = $8, zip_code = $9, country = $10, business_type = $11, tax_id = $12, currency = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.ShopName, shop.OwnerName, shop.Email, shop.Phone, shop.Address, shop.City,
		shop.State, shop.ZipCode, shop.Country, shop.BusinessType, shop.TaxID, shop.Currency, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}
