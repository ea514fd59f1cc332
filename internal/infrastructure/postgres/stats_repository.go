package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregados de solo lectura para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de agregados.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountActiveProducts cuenta los productos activos de la tienda.
func (r *StatsRepo) CountActiveProducts(shopID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE shop_id = $1 AND is_active = true`, shopID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta los productos activos con stock por debajo de su mínimo.
func (r *StatsRepo) CountLowStock(shopID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE shop_id = $1 AND is_active = true AND current_stock < min_stock_level`,
		shopID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// TodaySalesTotal suma el total vendido hoy (fecha del servidor de BD).
func (r *StatsRepo) TodaySalesTotal(shopID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE shop_id = $1 AND sale_date::date = CURRENT_DATE`,
		shopID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("today sales total: %w", err)
	}
	return total, nil
}

// CountCustomers cuenta los clientes de la tienda.
func (r *StatsRepo) CountCustomers(shopID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM customers WHERE shop_id = $1`, shopID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
