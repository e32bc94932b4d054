package transfer_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
)

// rig arma las dos operaciones con colaboradores falsos compartidos.
type rig struct {
	transport *fakeTransportRepo
	warehouse *fakeWarehouseRepo
	notifier  *fakeNotifier
	reports   *fakeReports
	send      *transfer.SendOperation
	receive   *transfer.ReceiveOperation
}

func newRig(t *testing.T, reads []string) *rig {
	t.Helper()
	log := testLogger()

	codes := &fakeCodeRepo{codes: map[string]string{
		"QR-A": "product_1",
		"QR-B": "product_2",
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"product_1": {ID: "product_1", FieldKey: "product_1", Name: "Tornillo M8", UnitPrice: decimal.NewFromInt(1200)},
		"product_2": {ID: "product_2", FieldKey: "product_2", Name: "Tuerca M8", UnitPrice: decimal.NewFromInt(300)},
	}}

	r := &rig{
		transport: newFakeTransportRepo(),
		warehouse: newFakeWarehouseRepo(),
		notifier:  &fakeNotifier{},
		reports:   &fakeReports{},
	}
	scans := transfer.NewScanCollector(&fakeScanner{reads: reads}, codes, log)
	tLedger := transfer.NewTransportLedger(r.transport, log)
	wLedger := transfer.NewWarehouseLedger(r.warehouse, log)

	r.send = transfer.NewSendOperation(scans, tLedger, wLedger, log)
	r.receive = transfer.NewReceiveOperation(
		scans, tLedger, wLedger, products, r.notifier, r.reports,
		transfer.AlertConfig{Recipient: "supervisor@example.com"}, log,
	)
	return r
}

func transportQty(t *testing.T, r *rig, route, field string) string {
	t.Helper()
	rec, err := r.transport.Get(route)
	require.NoError(t, err)
	require.NotNil(t, rec)
	v, ok := rec.Quantity(field)
	require.True(t, ok)
	return v
}

func warehouseQty(t *testing.T, r *rig, id, field string) string {
	t.Helper()
	rec, err := r.warehouse.Get(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	v, ok := rec.Quantity(field)
	require.True(t, ok)
	return v
}

// ─── SendOperation ───────────────────────────────────────────────────────────

func TestSend_DespachaYDebita(t *testing.T) {
	r := newRig(t, []string{"QR-A", "QR-A", "QR-B"})
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "10", "product_2": "4"})

	msgs, err := r.send.Execute(context.Background(), "W1", "Bogota", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, msgs)

	assert.Equal(t, ":2", transportQty(t, r, "W1-Bogota", "product_1"))
	assert.Equal(t, ":1", transportQty(t, r, "W1-Bogota", "product_2"))
	assert.Equal(t, "8", warehouseQty(t, r, "W1", "product_1"))
	assert.Equal(t, "3", warehouseQty(t, r, "W1", "product_2"))
}

// El fallo de un producto no detiene el resto del lote (completitud parcial).
func TestSend_FalloDeUnProductoNoDetieneElLote(t *testing.T) {
	r := newRig(t, []string{"QR-A", "QR-B"})
	// W1 no tiene campo product_1: el débito de product_1 falla, product_2 sigue
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_2": "4"})

	msgs, err := r.send.Execute(context.Background(), "W1", "Bogota", 2)
	require.NoError(t, err)

	assert.Contains(t, msgs, "no se pudo debitar product_1 de la bodega W1")
	assert.Equal(t, "3", warehouseQty(t, r, "W1", "product_2"))
	// El despacho de product_1 sí quedó en el manifiesto (no es atómico entre ledgers)
	assert.Equal(t, ":1", transportQty(t, r, "W1-Bogota", "product_1"))
}

func TestSend_EntradaInvalida(t *testing.T) {
	r := newRig(t, nil)
	_, err := r.send.Execute(context.Background(), "", "Bogota", 3)
	assert.Error(t, err)
	_, err = r.send.Execute(context.Background(), "W1", "Bogota", 0)
	assert.Error(t, err)
}

// ─── ReceiveOperation: escenarios de conciliación ────────────────────────────

// Escenario A: se despacharon 5, llegan 5 -> sin pérdida, bodega acreditada.
func TestReceive_EscenarioA_SinPerdida(t *testing.T) {
	r := newRig(t, []string{"QR-A", "QR-A", "QR-A", "QR-A", "QR-A"})
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":5"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 5)
	require.NoError(t, err)

	assert.False(t, res.LossDetected)
	assert.Equal(t, map[string]int64{"product_1": 0}, res.Deltas)
	assert.Contains(t, res.Messages, "sin pérdida de material")
	assert.Empty(t, r.notifier.sent)
	assert.Equal(t, "0", transportQty(t, r, "W1-Bogota", "product_1"))
	assert.Equal(t, "5", warehouseQty(t, r, "W1", "product_1"))
}

// Escenario B: se despacharon 5, llegan 3 -> delta 2, pérdida y alerta.
func TestReceive_EscenarioB_PerdidaDetectada(t *testing.T) {
	r := newRig(t, []string{"QR-A", "QR-A", "QR-A"})
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":5"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 3)
	require.NoError(t, err)

	assert.True(t, res.LossDetected)
	assert.Equal(t, map[string]int64{"product_1": 2}, res.Deltas)
	// El manifiesto quedó con el remanente y la bodega acreditada con lo recibido
	assert.Equal(t, "2", transportQty(t, r, "W1-Bogota", "product_1"))
	assert.Equal(t, "3", warehouseQty(t, r, "W1", "product_1"))

	// Alerta con ruta, detalle y adjunto
	require.Len(t, r.notifier.sent, 1)
	sent := r.notifier.sent[0]
	assert.Equal(t, "supervisor@example.com", sent.To)
	assert.Equal(t, "Material perdido", sent.Subject)
	assert.Contains(t, sent.Body, "W1-Bogota")
	assert.Contains(t, sent.Body, "Tornillo M8")
	assert.NotEmpty(t, sent.Attachment)

	// El reporte valora el faltante: 2 x 1200
	require.Len(t, r.reports.rows, 1)
	assert.Equal(t, int64(2), r.reports.rows[0].Delta)
	assert.True(t, r.reports.rows[0].EstimatedValue.Equal(decimal.NewFromInt(2400)),
		"valor estimado %s", r.reports.rows[0].EstimatedValue)
}

// Escenario C: la ruta no tiene el producto -> rechazo sin mutación ni pánico.
func TestReceive_EscenarioC_ProductoSinManifiesto(t *testing.T) {
	r := newRig(t, []string{"QR-A"})
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_2", ":3"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0", "product_2": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 1)
	require.NoError(t, err)

	assert.Contains(t, res.Messages, "recepción de product_1 rechazada")
	// product_1 no entra a la conciliación (lado registrado vacío -> sin pérdida)
	assert.False(t, res.LossDetected)
	assert.Empty(t, res.Deltas)
	assert.Equal(t, ":3", transportQty(t, r, "W1-Bogota", "product_2"))
}

// Escenario D: pedir 10 con 5 registrados -> rechazo, manifiesto intacto.
func TestReceive_EscenarioD_CantidadInsuficiente(t *testing.T) {
	reads := make([]string, 10)
	for i := range reads {
		reads[i] = "QR-A"
	}
	r := newRig(t, reads)
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":5"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 10)
	require.NoError(t, err)

	assert.Contains(t, res.Messages, "recepción de product_1 rechazada")
	assert.Equal(t, ":5", transportQty(t, r, "W1-Bogota", "product_1"))
}

// Todo el lote se procesa, no solo el primer producto resuelto.
func TestReceive_ProcesaElLoteCompleto(t *testing.T) {
	r := newRig(t, []string{"QR-A", "QR-A", "QR-B"})
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":2"))
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_2", ":1"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0", "product_2": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 3)
	require.NoError(t, err)

	assert.False(t, res.LossDetected)
	assert.Equal(t, "2", warehouseQty(t, r, "W1", "product_1"))
	assert.Equal(t, "1", warehouseQty(t, r, "W1", "product_2"))
}

// El fallo del notificador se registra y no revierte el ledger.
func TestReceive_FalloDeNotificacionNoBloquea(t *testing.T) {
	r := newRig(t, []string{"QR-A"})
	r.notifier.err = assert.AnError
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":4"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0"})

	res, err := r.receive.Execute(context.Background(), "W1", "Bogota", 1)
	require.NoError(t, err)

	assert.True(t, res.LossDetected)
	assert.Equal(t, "3", transportQty(t, r, "W1-Bogota", "product_1"))
	assert.Equal(t, "1", warehouseQty(t, r, "W1", "product_1"))
}

// Si el PDF falla, la alerta sale sin adjunto.
func TestReceive_FalloDePDFEnviaSinAdjunto(t *testing.T) {
	r := newRig(t, []string{"QR-A"})
	r.reports.err = assert.AnError
	require.NoError(t, r.transport.UpsertField("W1-Bogota", "product_1", ":4"))
	warehouseWith(t, r.warehouse, "W1", map[string]string{"product_1": "0"})

	_, err := r.receive.Execute(context.Background(), "W1", "Bogota", 1)
	require.NoError(t, err)

	require.Len(t, r.notifier.sent, 1)
	assert.Empty(t, r.notifier.sent[0].Attachment)
}
