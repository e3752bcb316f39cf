// Package cli comandos de la terminal invex: cada pantalla de la app es un subcomando.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jhoicas/invex/internal/application/auth"
	"github.com/jhoicas/invex/internal/application/report"
	"github.com/jhoicas/invex/internal/application/usecase"
	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/pkg/logger"
)

// Deps dependencias de los comandos.
type Deps struct {
	Auth      *auth.AuthUseCase
	Products  repository.ProductRepository
	ProductUC *usecase.ProductUseCase
	Stats     *usecase.StatisticsUseCase
	Report    *report.ReportUseCase
	Lang      language.Tag
	Log       *logger.Logger

	In  io.Reader
	Out io.Writer
	// Interactive activa readline (historial, edición de línea) en el bucle de escaneo.
	Interactive bool
	// HistoryFile historial de readline; vacío = sin historial.
	HistoryFile string
}

type app struct {
	Deps
}

// NewRootCommand construye el árbol de comandos.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	a := &app{Deps: deps}

	root := &cobra.Command{
		Use:           "invex",
		Short:         "Cliente de inventario para operarios de almacén",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(deps.In)
	root.SetOut(deps.Out)

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.productsCommand(),
		a.showCommand(),
		a.restockCommand(),
		a.unloadCommand(),
		a.scanCommand(),
		a.warehousesCommand(),
		a.addCommand(),
		a.statsCommand(),
		a.reportCommand(),
	)
	return root
}

// session restaura la sesión local; sin sesión pide iniciar sesión.
func (a *app) session() (*entity.Session, error) {
	s, err := a.Auth.Restore()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, fmt.Errorf("%w: ejecute 'invex login'", err)
		}
		return nil, err
	}
	return s, nil
}

// findProduct busca por id y, si no hay, por código de barras.
func (a *app) findProduct(ctx context.Context, ref string) (*entity.Product, error) {
	list, err := a.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == ref {
			return &list[i], nil
		}
	}
	for i := range list {
		if list[i].Barcode == ref {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("producto %q: %w", ref, domain.ErrNotFound)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}
