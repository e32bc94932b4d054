// Package pdf implementa la generación del reporte de pérdida que se
// adjunta a la alerta de conciliación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de pérdida  │  Ruta + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Despachado | Recibido | Delta | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor estimado del faltante                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	apptransfer "github.com/tu-usuario/logitrack/internal/application/transfer"
)

var (
	colorPrimary = &props.Color{Red: 127, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apptransfer.LossReportGenerator = (*LossReportGenerator)(nil)

// LossReportGenerator implementa transfer.LossReportGenerator usando Maroto v2.
type LossReportGenerator struct{}

// NewLossReportGenerator construye el generador.
func NewLossReportGenerator() *LossReportGenerator { return &LossReportGenerator{} }

// GenerateLossReport genera el PDF del reporte y devuelve sus bytes.
func (g *LossReportGenerator) GenerateLossReport(route string, rows []apptransfer.LossReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de pérdida de material", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(route))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, r := range rows {
		m.AddRows(detailRow(r))
		total = total.Add(r.EstimatedValue)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y ruta + fecha (der).
func headerRow(route string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE PÉRDIDA DE MATERIAL", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Conciliación de recepción contra manifiesto", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ruta: "+route, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de faltantes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Despachado", 2, align.Right),
		h("Recibido", 2, align.Right),
		h("Delta", 1, align.Right),
		h("Valor est.", 2, align.Right),
	)
}

// detailRow: una fila por producto con faltante.
func detailRow(r apptransfer.LossReportRow) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(
			fmt.Sprintf("%s (%s)", r.ProductName, r.ProductID),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", r.Recorded),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", r.Scanned),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%+d", r.Delta),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+r.EstimatedValue.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: valor estimado total del faltante.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}
