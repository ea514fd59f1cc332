package repository

import "github.com/shopspring/decimal"

// StatsRepository agregados de solo lectura para el dashboard.
type StatsRepository interface {
	CountActiveProducts(shopID string) (int, error)
	// CountLowStock productos activos con stock por debajo de su mínimo.
	CountLowStock(shopID string) (int, error)
	TodaySalesTotal(shopID string) (decimal.Decimal, error)
	CountCustomers(shopID string) (int, error)
}
