package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jhoicas/invex/internal/domain/entity"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// quantity colorea la cantidad según su nivel: rojo agotado, amarillo bajo, verde correcto.
func quantity(n int) string {
	s := strconv.Itoa(n)
	switch entity.LevelOf(n) {
	case entity.StockEmpty:
		return text.Colors{text.FgRed, text.Bold}.Sprint(s)
	case entity.StockLow:
		return text.FgYellow.Sprint(s)
	default:
		return text.FgGreen.Sprint(s)
	}
}

func renderProducts(w io.Writer, products []entity.Product) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Nombre", "Tipo", "Proveedor", "Precio", "Cantidad", "Código"})
	for i := range products {
		p := &products[i]
		t.AppendRow(table.Row{p.ID, p.Name, p.Type, p.Supplier, p.Price.StringFixed(2), quantity(p.TotalQuantity()), p.Barcode})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(products), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

func renderProduct(w io.Writer, p entity.Product) {
	t := newTable(w)
	t.SetTitle(p.Name)
	t.AppendRows([]table.Row{
		{"ID", p.ID},
		{"Tipo", p.Type},
		{"Proveedor", p.Supplier},
		{"Precio", p.Price.StringFixed(2)},
		{"Código", p.Barcode},
		{"Cantidad total", quantity(p.TotalQuantity())},
	})
	if n := len(p.EditedBy); n > 0 {
		last := p.EditedBy[n-1]
		t.AppendRow(table.Row{"Última edición", last.WarehousemanID + " " + last.At.Local().Format("02/01/2006 15:04")})
	}
	t.Render()

	s := newTable(w)
	s.AppendHeader(table.Row{"Stock", "Almacén", "Ubicación", "Cantidad"})
	for _, st := range p.Stocks {
		s.AppendRow(table.Row{st.ID, st.Name, location(st.Localisation), quantity(st.Quantity)})
	}
	s.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
	s.Render()
}

func renderWarehouses(w io.Writer, list []entity.Warehouse) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Almacén", "Ubicación"})
	for _, wh := range list {
		t.AppendRow(table.Row{wh.ID, wh.Name, location(wh.Localisation)})
	}
	t.Render()
}

func renderStatistics(w io.Writer, s *entity.Statistics) {
	t := newTable(w)
	t.SetTitle("Estadísticas")
	t.AppendRows([]table.Row{
		{"Productos", s.TotalProducts},
		{"Agotados", s.OutOfStock},
		{"Valor del stock", s.TotalStockValue.StringFixed(2)},
		{"Más añadidos", orNone(s.MostAddedProducts)},
		{"Más retirados", orNone(s.MostRemovedProducts)},
	})
	t.Render()
}

func location(l entity.Localisation) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{l.Address, l.City, l.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
