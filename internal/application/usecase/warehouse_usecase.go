package usecase

import (
	"sort"

	"github.com/tu-usuario/logitrack/internal/application/dto"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	"github.com/tu-usuario/logitrack/internal/domain/transfer"
)

// WarehouseUseCase casos de uso de consulta y alta de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega con su inventario inicial.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	fields := make(map[string]string, len(in.Products))
	for id, qty := range in.Products {
		fields[id] = transfer.FormatValue(qty)
	}
	record := &entity.WarehouseRecord{ID: in.ID, Products: fields}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toWarehouseResponse(record), nil
}

// GetByID obtiene una bodega por id. Devuelve nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	record, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toWarehouseResponse(record), nil
}

// List lista todas las bodegas ordenadas por id.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &dto.WarehouseListResponse{Items: items}, nil
}

func toWarehouseResponse(w *entity.WarehouseRecord) *dto.WarehouseResponse {
	products := make(map[string]int64, len(w.Products))
	for id, raw := range w.Products {
		qty, err := transfer.CleanValue(raw)
		if err != nil {
			continue // campo corrupto, se omite de la vista
		}
		products[id] = qty
	}
	return &dto.WarehouseResponse{ID: w.ID, Products: products, LastModified: w.LastModified}
}
