package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/jhoicas/invex/internal/application/scan"
	"github.com/jhoicas/invex/internal/domain"
)

// lineReader fuente de líneas del bucle de escaneo: readline en terminal, bufio en tuberías y tests.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type scannerReader struct {
	s *bufio.Scanner
}

func (r *scannerReader) Readline() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

func (r *scannerReader) Close() error { return nil }

func (a *app) newLineReader() (lineReader, error) {
	if !a.Interactive {
		return &scannerReader{s: bufio.NewScanner(a.In)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[1;36mscan>\033[0m ",
		HistoryFile:     a.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          a.Out,
	})
	if err != nil {
		return nil, fmt.Errorf("inicializar readline: %w", err)
	}
	return rl, nil
}

func (a *app) scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [código]",
		Short: "Resuelve códigos de barras: uno manual o un bucle para lectores tipo teclado",
		Long: "Con un argumento resuelve ese código (entrada manual, se recortan espacios).\n" +
			"Sin argumentos lee un código por línea tal como lo envía el lector; 'exit' termina.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := scan.NewBarcodeFlow(a.Products, a.Log)
			if len(args) == 1 {
				res, err := flow.Submit(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				a.printResolution(res)
				return nil
			}
			return a.scanLoop(cmd.Context(), flow)
		},
	}
}

func (a *app) scanLoop(ctx context.Context, flow *scan.BarcodeFlow) error {
	lr, err := a.newLineReader()
	if err != nil {
		return err
	}
	defer lr.Close()

	if a.Interactive {
		a.printf("Escanee un código ('exit' para salir)\n")
	}
	for {
		flow.Start()
		line, err := lr.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		res, err := flow.Capture(ctx, line)
		if err != nil {
			if errors.Is(err, domain.ErrTransport) {
				a.printf("Error: %s\n", Describe(err))
				continue
			}
			return err
		}
		a.printResolution(res)
		flow.Reset()
	}
}

func (a *app) printResolution(res *scan.Resolution) {
	if res == nil {
		return
	}
	switch res.Outcome {
	case scan.Found:
		renderProduct(a.Out, *res.Product)
	case scan.NotFound:
		a.printf("Producto no encontrado: %s\n", res.Barcode)
		a.printf("Para darlo de alta: invex add --barcode %q --name ... --price ... --supplier ... --warehouse ... --quantity ...\n", res.Barcode)
	}
}
