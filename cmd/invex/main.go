// Command invex cliente de terminal del inventario para operarios de almacén.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"
	"golang.org/x/text/language"

	"github.com/jhoicas/invex/internal/application/auth"
	"github.com/jhoicas/invex/internal/application/report"
	"github.com/jhoicas/invex/internal/application/usecase"
	"github.com/jhoicas/invex/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/invex/internal/infrastructure/pdf"
	"github.com/jhoicas/invex/internal/infrastructure/restapi"
	"github.com/jhoicas/invex/internal/interfaces/cli"
	"github.com/jhoicas/invex/pkg/config"
	"github.com/jhoicas/invex/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	lang, err := language.Parse(cfg.Catalog.CollationLang)
	if err != nil {
		log.Warn().Err(err).Str("lang", cfg.Catalog.CollationLang).Msg("COLLATION_LANG inválido, se usa fr")
		lang = language.French
	}

	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log.Component("restapi"))
	products := restapi.NewProductRepository(client)
	sessions := localstore.NewFileStore(cfg.Session.File)

	root := cli.NewRootCommand(cli.Deps{
		Auth:        auth.NewAuthUseCase(restapi.NewWarehousemanRepository(client), sessions, log),
		Products:    products,
		ProductUC:   usecase.NewProductUseCase(products),
		Stats:       usecase.NewStatisticsUseCase(restapi.NewStatisticsRepository(client)),
		Report:      report.NewReportUseCase(products, infrapdf.NewMarotoReportGenerator(cfg.App.Name)),
		Lang:        lang,
		Log:         log,
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: readline.IsTerminal(int(os.Stdin.Fd())),
		HistoryFile: filepath.Join(filepath.Dir(cfg.Session.File), "scan_history"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("comando fallido")
		fmt.Fprintln(os.Stderr, "Error:", cli.Describe(err))
		stop()
		os.Exit(1)
	}
}
