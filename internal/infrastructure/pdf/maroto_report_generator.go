// Package pdf implementa la generación del reporte PDF del estado del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CONSUMIBLES: Nombre | Saldo | Mínimo | Estado        │
//	│  (stock bajo resaltado en rojo)                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA EMPAQUES: Descripción | Total | En sitio | Enviados  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/piotrmaz/nvpApp/internal/application/report"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
)

var _ report.StockroomPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.StockroomPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockroomPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockroomPDF(
	_ context.Context,
	consumables []*entity.Consumable,
	packages []*entity.Package,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Sección consumibles
	m.AddRows(sectionTitleRow("CONSUMIBLES"))
	m.AddRows(consumableHeaderRow())
	for _, r := range consumableRows(consumables) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Sección empaques
	m.AddRows(sectionTitleRow("EMPAQUES RETORNABLES"))
	m.AddRows(packageHeaderRow())
	for _, r := range packageRows(packages) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// consumableHeaderRow: cabecera de la tabla de consumibles.
func consumableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Consumible", 6, align.Left),
		h("Saldo", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// consumableRows: una fila por consumible; stock bajo en rojo.
func consumableRows(consumables []*entity.Consumable) []core.Row {
	result := make([]core.Row, 0, len(consumables))
	for _, c := range consumables {
		estado := "OK"
		color := colorGray
		if c.IsLowStock() {
			estado = "STOCK BAJO"
			color = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(c.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", c.OnHand), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", c.MinStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(estado, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1, Color: color,
			})),
		))
	}
	return result
}

// packageHeaderRow: cabecera de la tabla de empaques.
func packageHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empaque", 6, align.Left),
		h("Total", 2, align.Right),
		h("En sitio", 2, align.Right),
		h("Enviados", 2, align.Right),
	)
}

// packageRows: una fila por empaque con sus tres cubetas.
func packageRows(packages []*entity.Package) []core.Row {
	num := func(n int) core.Col {
		return col.New(2).Add(text.New(fmt.Sprintf("%d", n), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(packages))
	for _, p := range packages {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(p.Description, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			num(p.Quantity),
			num(p.Inside),
			num(p.Outside),
		))
	}
	return result
}
