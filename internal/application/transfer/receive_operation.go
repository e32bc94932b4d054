package transfer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	domtransfer "github.com/tu-usuario/logitrack/internal/domain/transfer"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

// AlertConfig destino de las alertas de pérdida.
type AlertConfig struct {
	Recipient string
}

// ReceiveResult es el resultado de una recepción: mensajes de estado por
// producto y la clasificación de la conciliación.
type ReceiveResult struct {
	Messages     []string
	LossDetected bool
	Deltas       map[string]int64
}

// ReceiveOperation orquesta una recepción: escanea el lote entrante,
// confirma cada producto contra el manifiesto de la ruta, concilia lo
// registrado contra lo escaneado y acredita la bodega de destino. Si la
// conciliación arroja algún delta distinto de cero se notifica la pérdida
// con el reporte adjunto; el fallo de la notificación se registra y no
// bloquea las mutaciones de ledger.
type ReceiveOperation struct {
	scans     *ScanCollector
	transport *TransportLedger
	warehouse *WarehouseLedger
	products  repository.ProductRepository
	notifier  Notifier
	reports   LossReportGenerator
	alert     AlertConfig
	log       *logger.Logger
}

// NewReceiveOperation construye la operación.
func NewReceiveOperation(
	scans *ScanCollector,
	transport *TransportLedger,
	warehouse *WarehouseLedger,
	products repository.ProductRepository,
	notifier Notifier,
	reports LossReportGenerator,
	alert AlertConfig,
	log *logger.Logger,
) *ReceiveOperation {
	return &ReceiveOperation{
		scans:     scans,
		transport: transport,
		warehouse: warehouse,
		products:  products,
		notifier:  notifier,
		reports:   reports,
		alert:     alert,
		log:       log.Component("receive-op"),
	}
}

// Execute procesa la recepción en warehouseID de la mercancía de la ruta
// warehouseID-address, con n lecturas. Todo el lote se confirma, concilia
// y acredita (no solo el primer producto resuelto).
func (op *ReceiveOperation) Execute(ctx context.Context, warehouseID, address string, n int) (*ReceiveResult, error) {
	if warehouseID == "" || address == "" || n <= 0 {
		return nil, domain.ErrInvalidInput
	}
	route := entity.RouteKey(warehouseID, address)
	opID := uuid.New().String()
	op.log.Info().Str("op_id", opID).Str("route", route).Int("scans", n).Msg("iniciando recepción")

	batch, err := op.scans.Collect(ctx, n)
	if err != nil {
		return nil, err
	}

	var messages []string

	// Confirmación por producto: captura la cantidad que constaba como
	// despachada antes de restar; los rechazos no mutan y no entran a la
	// conciliación.
	recorded := make(map[string]int64, batch.Len())
	for _, e := range batch.Entries() {
		conf, err := op.transport.ConfirmReceipt(route, e.ProductID, e.Count)
		if err != nil {
			op.log.Warn().Err(err).Str("op_id", opID).Str("product_id", e.ProductID).Msg("confirmación de recepción rechazada")
			messages = append(messages, fmt.Sprintf("recepción de %s rechazada", e.ProductID))
			continue
		}
		recorded[e.ProductID] = conf.Shipped
		messages = append(messages, fmt.Sprintf("recepción confirmada: %s, remanente en tránsito %d", e.ProductID, conf.Remaining))
	}

	deltas := domtransfer.Reconcile(recorded, batch)
	lost := !domtransfer.NoLoss(deltas)
	if lost {
		op.notifyLoss(ctx, opID, route, deltas, batch)
		messages = append(messages, fmt.Sprintf("pérdida detectada en la ruta %s, alerta enviada", route))
	} else {
		messages = append(messages, "sin pérdida de material")
	}

	// Acreditar la bodega de destino con todo el lote recibido
	for _, e := range batch.Entries() {
		creditMsgs, err := op.warehouse.Credit(warehouseID, e.ProductID, e.Count)
		if err != nil {
			op.log.Error().Err(err).Str("op_id", opID).Str("product_id", e.ProductID).Msg("crédito de bodega falló")
			messages = append(messages, fmt.Sprintf("no se pudo acreditar %s en la bodega %s", e.ProductID, warehouseID))
			continue
		}
		messages = append(messages, creditMsgs...)
	}

	return &ReceiveResult{Messages: messages, LossDetected: lost, Deltas: deltas}, nil
}

// notifyLoss arma el cuerpo de la alerta y el reporte adjunto. Cualquier
// fallo aquí degrada a log: la alerta nunca revierte ni bloquea el ledger.
func (op *ReceiveOperation) notifyLoss(ctx context.Context, opID, route string, deltas map[string]int64, batch *entity.ScanBatch) {
	rows := op.buildLossRows(deltas, batch)

	var total decimal.Decimal
	var lines []string
	for _, r := range rows {
		total = total.Add(r.EstimatedValue)
		lines = append(lines, fmt.Sprintf("  - %s (%s): despachado %d, recibido %d, delta %+d",
			r.ProductName, r.ProductID, r.Recorded, r.Scanned, r.Delta))
	}

	body := fmt.Sprintf(
		"Posible pérdida o robo de material durante el trayecto %s.\n\nDetalle por producto:\n%s\n\nValor estimado del faltante: %s\n",
		route, strings.Join(lines, "\n"), total.StringFixed(2),
	)

	n := Notification{
		To:      op.alert.Recipient,
		Subject: "Material perdido",
		Body:    body,
	}
	if pdf, err := op.reports.GenerateLossReport(route, rows); err != nil {
		op.log.Error().Err(err).Str("op_id", opID).Msg("no se pudo generar el reporte de pérdida, se envía sin adjunto")
	} else {
		n.Attachment = pdf
		n.AttachmentName = fmt.Sprintf("perdida-%s.pdf", route)
	}

	if err := op.notifier.Notify(ctx, n); err != nil {
		op.log.Warn().Err(err).Str("op_id", opID).Str("route", route).Msg("envío de alerta falló")
	}
}

// buildLossRows valora los deltas distintos de cero con el precio unitario
// del catálogo. Un producto sin ficha de catálogo se reporta por su id con
// valor cero en lugar de omitirse.
func (op *ReceiveOperation) buildLossRows(deltas map[string]int64, batch *entity.ScanBatch) []LossReportRow {
	nonZero := domtransfer.NonZero(deltas)
	ids := make([]string, 0, len(nonZero))
	for id := range nonZero {
		ids = append(ids, id)
	}
	sort.Strings(ids) // salida estable para el correo y el PDF

	rows := make([]LossReportRow, 0, len(ids))
	for _, id := range ids {
		delta := nonZero[id]
		row := LossReportRow{
			ProductID:   id,
			ProductName: id,
			Recorded:    deltas[id] + batch.Count(id),
			Scanned:     batch.Count(id),
			Delta:       delta,
		}
		if p, err := op.products.GetByID(id); err == nil && p != nil {
			row.ProductName = p.Name
			row.EstimatedValue = p.UnitPrice.Mul(decimal.NewFromInt(delta))
		}
		rows = append(rows, row)
	}
	return rows
}
