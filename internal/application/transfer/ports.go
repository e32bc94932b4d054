package transfer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Scanner es el colaborador externo del dispositivo de lectura: una llamada
// bloqueante por lectura, un código por llamada. El dispositivo atiende una
// sola lectura a la vez, así que el agregador lo invoca secuencialmente.
type Scanner interface {
	ScanOnce(ctx context.Context) (string, error)
}

// Notification es el mensaje fuera de banda que se entrega cuando se
// detecta una pérdida, con el reporte PDF adjunto si se pudo generar.
type Notification struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte // nil = sin adjunto
	AttachmentName string
}

// Notifier entrega la notificación. Un fallo de entrega se registra en el
// log y no bloquea las mutaciones de ledger ya realizadas.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LossReportRow es una fila del reporte de pérdida: producto, cantidades y
// valor estimado del faltante.
type LossReportRow struct {
	ProductID      string
	ProductName    string
	Recorded       int64
	Scanned        int64
	Delta          int64
	EstimatedValue decimal.Decimal
}

// LossReportGenerator produce el documento adjunto de la alerta.
type LossReportGenerator interface {
	GenerateLossReport(route string, rows []LossReportRow) ([]byte, error)
}
