package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// DashboardUseCase agregados de solo lectura para la pantalla principal.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// Stats calcula los contadores de la tienda. Cada agregado se consulta por
// separado; no hay caché, los números reflejan el estado actual.
func (uc *DashboardUseCase) Stats(shopID string) (*dto.DashboardStatsResponse, error) {
	products, err := uc.stats.CountActiveProducts(shopID)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.stats.CountLowStock(shopID)
	if err != nil {
		return nil, err
	}
	salesTotal, err := uc.stats.TodaySalesTotal(shopID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.stats.CountCustomers(shopID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:   products,
		LowStockCount:   lowStock,
		TodaySalesTotal: salesTotal,
		TotalCustomers:  customers,
	}, nil
}
