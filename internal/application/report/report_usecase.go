package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/inventory"
	"github.com/jhoicas/invex/internal/domain/repository"
)

// ProductReportGenerator puerto de salida para renderizar el informe (implementado con Maroto).
type ProductReportGenerator interface {
	GenerateProductReport(ctx context.Context, report *ProductReport) ([]byte, error)
}

// ProductReportRow una fila de la tabla del informe.
type ProductReportRow struct {
	Name          string
	Type          string
	Supplier      string
	Price         decimal.Decimal
	TotalQuantity int
	Barcode       string
	Level         entity.StockLevel
}

// ProductReport datos ya calculados que el generador solo dibuja.
type ProductReport struct {
	Title       string
	GeneratedAt time.Time
	Rows        []ProductReportRow

	TotalProducts int
	TotalUnits    int
	OutOfStock    int
	TotalValue    decimal.Decimal
}

// ReportUseCase exporta el catálogo completo como PDF.
type ReportUseCase struct {
	repo      repository.ProductRepository
	generator ProductReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(repo repository.ProductRepository, generator ProductReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Build carga los productos y arma el informe en el orden recibido del servidor.
func (uc *ReportUseCase) Build(ctx context.Context) (*ProductReport, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe: listar productos: %w", err)
	}

	stats := inventory.Summarize(products, nil)
	rep := &ProductReport{
		Title:         "Inventario de productos",
		GeneratedAt:   uc.now(),
		Rows:          make([]ProductReportRow, 0, len(products)),
		TotalProducts: stats.TotalProducts,
		OutOfStock:    stats.OutOfStock,
		TotalValue:    stats.TotalStockValue,
	}
	for i := range products {
		p := &products[i]
		qty := p.TotalQuantity()
		rep.TotalUnits += qty
		rep.Rows = append(rep.Rows, ProductReportRow{
			Name:          p.Name,
			Type:          p.Type,
			Supplier:      p.Supplier,
			Price:         p.Price,
			TotalQuantity: qty,
			Barcode:       p.Barcode,
			Level:         entity.LevelOf(qty),
		})
	}
	return rep, nil
}

// Export genera el PDF y lo escribe en w. Devuelve el nombre de archivo sugerido.
func (uc *ReportUseCase) Export(ctx context.Context, w io.Writer) (string, error) {
	rep, err := uc.Build(ctx)
	if err != nil {
		return "", err
	}
	pdfBytes, err := uc.generator.GenerateProductReport(ctx, rep)
	if err != nil {
		return "", fmt.Errorf("informe: generación fallida: %w", err)
	}
	if _, err := w.Write(pdfBytes); err != nil {
		return "", fmt.Errorf("informe: escribir PDF: %w", err)
	}
	return fmt.Sprintf("inventario_%s.pdf", rep.GeneratedAt.Format("20060102_150405")), nil
}
