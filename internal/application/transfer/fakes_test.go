package transfer_test

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ─── Scanner falso ────────────────────────────────────────────────────────────

var errDevice = errors.New("device timeout")

// fakeScanner entrega lecturas pregrabadas; un elemento vacío simula un
// fallo del dispositivo en ese intento.
type fakeScanner struct {
	reads []string
	pos   int
	calls int
}

func (s *fakeScanner) ScanOnce(_ context.Context) (string, error) {
	s.calls++
	if s.pos >= len(s.reads) {
		return "", errDevice
	}
	code := s.reads[s.pos]
	s.pos++
	if code == "" {
		return "", errDevice
	}
	return code, nil
}

// ─── Resolutor de códigos falso ───────────────────────────────────────────────

type fakeCodeRepo struct {
	codes map[string]string // code -> product id
}

func (r *fakeCodeRepo) Lookup(codeID string) (string, error) {
	if p, ok := r.codes[codeID]; ok {
		return p, nil
	}
	return "", domain.ErrNotFound
}

// ─── Repositorios de documentos en memoria ───────────────────────────────────

type fakeTransportRepo struct {
	records map[string]map[string]string
}

func newFakeTransportRepo() *fakeTransportRepo {
	return &fakeTransportRepo{records: make(map[string]map[string]string)}
}

func (r *fakeTransportRepo) Get(route string) (*entity.TransportRecord, error) {
	fields, ok := r.records[route]
	if !ok {
		return nil, nil
	}
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return &entity.TransportRecord{Route: route, Products: cp, LastModified: time.Now()}, nil
}

func (r *fakeTransportRepo) UpsertField(route, field, value string) error {
	if _, ok := r.records[route]; !ok {
		r.records[route] = make(map[string]string)
	}
	r.records[route][field] = value
	return nil
}

func (r *fakeTransportRepo) SetField(route, field, value string) error {
	if _, ok := r.records[route]; !ok {
		return domain.ErrRouteNotFound
	}
	r.records[route][field] = value
	return nil
}

func (r *fakeTransportRepo) List() ([]*entity.TransportRecord, error) {
	var out []*entity.TransportRecord
	for route := range r.records {
		rec, _ := r.Get(route)
		out = append(out, rec)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	records map[string]map[string]string
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{records: make(map[string]map[string]string)}
}

func (r *fakeWarehouseRepo) Get(id string) (*entity.WarehouseRecord, error) {
	fields, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return &entity.WarehouseRecord{ID: id, Products: cp, LastModified: time.Now()}, nil
}

func (r *fakeWarehouseRepo) Create(record *entity.WarehouseRecord) error {
	if _, ok := r.records[record.ID]; ok {
		return domain.ErrDuplicate
	}
	fields := make(map[string]string, len(record.Products))
	for k, v := range record.Products {
		fields[k] = v
	}
	r.records[record.ID] = fields
	return nil
}

func (r *fakeWarehouseRepo) SetField(id, field, value string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	r.records[id][field] = value
	return nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.WarehouseRecord, error) {
	var out []*entity.WarehouseRecord
	for id := range r.records {
		rec, _ := r.Get(id)
		out = append(out, rec)
	}
	return out, nil
}

// ─── Catálogo, notificador y reportes falsos ─────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeNotifier struct {
	sent []transfer.Notification
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, msg transfer.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

type fakeReports struct {
	rows []transfer.LossReportRow
	err  error
}

func (g *fakeReports) GenerateLossReport(_ string, rows []transfer.LossReportRow) ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.rows = rows
	return []byte("%PDF-fake"), nil
}
