// Package analytics contiene los casos de uso del resumen operativo
// del tablero: estado agregado de bodegas, catálogo y rutas.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/logitrack/internal/application/dto"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	"github.com/tu-usuario/logitrack/internal/domain/transfer"
)

// capacidad asumida por producto en cada bodega, para el cálculo de ocupación
const unitsPerProductCapacity = 100

// DashboardUseCase genera el resumen operativo del tablero.
//
// Fuente de datos: los repositorios de bodegas, tránsito y catálogo
// (consultas read-only). Los agregados se calculan en memoria sobre los
// mapas de campos de cada registro.
type DashboardUseCase struct {
	warehouses repository.WarehouseRepository
	transports repository.TransportRepository
	products   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	warehouses repository.WarehouseRepository,
	transports repository.TransportRepository,
	products repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{warehouses: warehouses, transports: transports, products: products}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo:
//  1. List() de bodegas     → totales y ocupación por ubicación
//  2. List() de tránsito    → rutas activas, pendientes y unidades en tránsito
//  3. List() de catálogo    → conteo de fichas
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	type warehousesResult struct {
		list []*entity.WarehouseRecord
		err  error
	}
	type transportsResult struct {
		list []*entity.TransportRecord
		err  error
	}
	type productsResult struct {
		count int
		err   error
	}

	whCh := make(chan warehousesResult, 1)
	trCh := make(chan transportsResult, 1)
	prCh := make(chan productsResult, 1)

	go func() {
		list, err := uc.warehouses.List()
		whCh <- warehousesResult{list, err}
	}()
	go func() {
		list, err := uc.transports.List()
		trCh <- transportsResult{list, err}
	}()
	go func() {
		list, err := uc.products.List()
		prCh <- productsResult{len(list), err}
	}()

	wh := <-whCh
	tr := <-trCh
	pr := <-prCh

	if wh.err != nil {
		return nil, fmt.Errorf("dashboard: bodegas: %w", wh.err)
	}
	if tr.err != nil {
		return nil, fmt.Errorf("dashboard: tránsito: %w", tr.err)
	}
	if pr.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", pr.err)
	}

	summary := &dto.DashboardSummaryDTO{
		Warehouses: len(wh.list),
		Products:   pr.count,
		Locations:  make([]dto.LocationSummaryDTO, 0, len(wh.list)),
	}

	for _, record := range wh.list {
		summary.Locations = append(summary.Locations, locationSummary(record))
	}
	sort.Slice(summary.Locations, func(i, j int) bool {
		return summary.Locations[i].WarehouseID < summary.Locations[j].WarehouseID
	})

	for _, record := range tr.list {
		if len(record.Products) == 0 {
			continue
		}
		summary.ActiveRoutes++
		for _, raw := range record.Products {
			qty, err := transfer.CleanValue(raw)
			if err != nil {
				continue
			}
			if strings.HasPrefix(raw, transfer.QuantityMarker) {
				summary.PendingShipping++
			}
			summary.UnitsInTransit += qty
		}
	}

	return summary, nil
}

// locationSummary agrega las unidades de una bodega y su ocupación contra
// la capacidad asumida de 100 unidades por producto.
func locationSummary(record *entity.WarehouseRecord) dto.LocationSummaryDTO {
	var total int64
	for _, raw := range record.Products {
		qty, err := transfer.CleanValue(raw)
		if err != nil {
			continue
		}
		total += qty
	}
	out := dto.LocationSummaryDTO{WarehouseID: record.ID, TotalUnits: total}
	if capacity := int64(len(record.Products)) * unitsPerProductCapacity; capacity > 0 {
		out.Utilization = decimal.NewFromInt(total).
			Div(decimal.NewFromInt(capacity)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return out
}
