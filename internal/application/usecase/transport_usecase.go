package usecase

import (
	"sort"
	"strings"

	"github.com/tu-usuario/logitrack/internal/application/dto"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	"github.com/tu-usuario/logitrack/internal/domain/transfer"
)

// TransportUseCase consultas sobre la mercancía en tránsito.
type TransportUseCase struct {
	repo repository.TransportRepository
}

// NewTransportUseCase construye el caso de uso.
func NewTransportUseCase(repo repository.TransportRepository) *TransportUseCase {
	return &TransportUseCase{repo: repo}
}

// GetByRoute obtiene el registro de una ruta. Devuelve nil si no existe.
func (uc *TransportUseCase) GetByRoute(route string) (*dto.TransportResponse, error) {
	record, err := uc.repo.Get(route)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toTransportResponse(record), nil
}

// List lista todas las rutas con mercancía registrada, ordenadas por ruta.
func (uc *TransportUseCase) List() (*dto.TransportListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransportResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toTransportResponse(rec))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Route < items[j].Route })
	return &dto.TransportListResponse{Items: items}, nil
}

func toTransportResponse(rec *entity.TransportRecord) *dto.TransportResponse {
	products := make(map[string]dto.TransitEntry, len(rec.Products))
	for id, raw := range rec.Products {
		qty, err := transfer.CleanValue(raw)
		if err != nil {
			continue
		}
		products[id] = dto.TransitEntry{
			Quantity: qty,
			Pending:  strings.HasPrefix(raw, transfer.QuantityMarker),
		}
	}
	return &dto.TransportResponse{Route: rec.Route, Products: products, LastModified: rec.LastModified}
}
