package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse agregados del dashboard de la tienda.
type DashboardStatsResponse struct {
	TotalProducts   int             `json:"total_products"`
	LowStockCount   int             `json:"low_stock_count"`
	TodaySalesTotal decimal.Decimal `json:"today_sales_total"`
	TotalCustomers  int             `json:"total_customers"`
}
