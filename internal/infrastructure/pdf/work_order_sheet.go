// Package pdf implementa la hoja de producción imprimible de una orden de
// trabajo, la que acompaña al trabajo por la planta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° de orden  │  Fechas de pedido y entrega          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + método de entrega                         │
//	│  PRODUCTO: nombre + medidas + extrusión + impresión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cantidad | Urgente | Puntual | Plancha | Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MEMOS: trabajo / entrega                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// WorkOrderSheetGenerator genera la hoja de producción usando Maroto v2.
type WorkOrderSheetGenerator struct{}

// NewWorkOrderSheetGenerator construye el generador.
func NewWorkOrderSheetGenerator() *WorkOrderSheetGenerator { return &WorkOrderSheetGenerator{} }

// GenerateWorkOrderSheet genera el PDF de la orden y devuelve sus bytes.
// La orden debe venir con Account y Product cargados.
func (g *WorkOrderSheetGenerator) GenerateWorkOrderSheet(wo *entity.WorkOrder, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de producción "+wo.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(wo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accountRow(wo))
	m.AddRows(productRow(wo, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRow(wo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range memoRows(wo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: número de orden (izq) y fechas (der).
func headerRow(wo *entity.WorkOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(wo.ID, props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("Pedido: "+wo.OrderedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Entrega: "+wo.DeliverBy.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
		),
	)
}

// accountRow: datos del cliente.
func accountRow(wo *entity.WorkOrder) core.Row {
	name := "—"
	if wo.Account != nil {
		name = wo.Account.Name
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Entrega: %s", name, nonEmpty(string(wo.DeliveryMethod), "—")),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// productRow: especificación del producto con medidas y datos de impresión.
func productRow(wo *entity.WorkOrder, product *entity.Product) core.Row {
	if product == nil {
		product = wo.Product
	}
	name, spec, print := "—", "—", "—"
	if product != nil {
		name = product.Name
		spec = fmt.Sprintf("%s × %s × %s mm", product.Thickness.String(), product.Length.String(), product.Width.String())
		print = fmt.Sprintf("%s  F:%d C:%d", product.PrintSide, product.PrintFrontColorCount, product.PrintBackColorCount)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Medidas: %s   |   Impresión: %s", spec, print),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cantidad", 3, align.Right),
		h("Urgente", 2, align.Center),
		h("Puntual", 2, align.Center),
		h("Plancha", 2, align.Center),
		h("Estado", 3, align.Center),
	)
}

func tableRow(wo *entity.WorkOrder) core.Row {
	mark := func(b bool) string {
		if b {
			return "SÍ"
		}
		return "—"
	}
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 9, Align: a, Top: 1}))
	}
	return row.New(8).Add(
		c(fmt.Sprintf("%d", wo.OrderQuantity), 3, align.Right),
		c(mark(wo.IsUrgent), 2, align.Center),
		c(mark(wo.ShouldBePunctual), 2, align.Center),
		c(string(wo.PlateStatus), 2, align.Center),
		c(string(wo.Status), 3, align.Center),
	)
}

func memoRows(wo *entity.WorkOrder) []core.Row {
	memo := func(label, value string) core.Row {
		return row.New(10).Add(
			col.New(12).Add(
				text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
				text.New(nonEmpty(value, "—"), props.Text{Size: 9, Top: 6}),
			),
		)
	}
	return []core.Row{
		memo("MEMO DE TRABAJO", wo.WorkMemo),
		memo("MEMO DE ENTREGA", wo.DeliveryMemo),
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
