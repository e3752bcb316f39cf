// Package scan resolución de códigos de barras: producto existente o alta nueva.
package scan

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/pkg/logger"
)

// State estado del flujo: Idle → Scanning → Resolved → Idle (Reset).
type State int

const (
	Idle State = iota
	Scanning
	Resolved
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Resolved:
		return "resolved"
	default:
		return "idle"
	}
}

// Outcome resultado de la resolución.
type Outcome int

const (
	Found Outcome = iota + 1
	NotFound
)

// Resolution destino tras resolver un código: detalle del producto (Found)
// o alta precargada con el código (NotFound).
type Resolution struct {
	Outcome Outcome
	Barcode string
	Product *entity.Product
}

// BarcodeFlow máquina de estados del escaneo. Una vez capturado un código, el resto de
// eventos de escaneo se ignoran hasta Reset.
type BarcodeFlow struct {
	repo repository.ProductRepository
	log  *logger.Logger

	mu     sync.Mutex
	state  State
	code   string
	result *Resolution
}

// NewBarcodeFlow construye el flujo en Idle.
func NewBarcodeFlow(repo repository.ProductRepository, log *logger.Logger) *BarcodeFlow {
	if log == nil {
		log = logger.Nop()
	}
	return &BarcodeFlow{repo: repo, log: log}
}

// Start Idle → Scanning; en cualquier otro estado no hace nada.
func (f *BarcodeFlow) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Idle {
		f.state = Scanning
	}
}

// Capture evento de escaneo (cámara o lector). Fuera de Scanning se ignora y devuelve (nil, nil).
func (f *BarcodeFlow) Capture(ctx context.Context, code string) (*Resolution, error) {
	if code == "" {
		return nil, domain.ErrEmptyBarcode
	}
	f.mu.Lock()
	if f.state != Scanning {
		f.mu.Unlock()
		f.log.Debug().Str("barcode", code).Stringer("state", f.State()).Msg("escaneo ignorado")
		return nil, nil
	}
	return f.resolveLocked(ctx, code)
}

// Submit entrada manual: se recortan espacios y un texto vacío se rechaza sin transición.
// Se acepta desde Idle o Scanning; tras una resolución hay que llamar a Reset (ErrBusy).
func (f *BarcodeFlow) Submit(ctx context.Context, code string) (*Resolution, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrEmptyBarcode
	}
	f.mu.Lock()
	if f.state == Resolved {
		f.mu.Unlock()
		return nil, fmt.Errorf("código %s ya resuelto: %w", f.code, domain.ErrBusy)
	}
	f.state = Scanning
	return f.resolveLocked(ctx, code)
}

// resolveLocked se llama con mu tomado y lo libera. El código queda capturado (Resolved)
// antes de consultar el repositorio; un error de transporte vuelve a Scanning.
func (f *BarcodeFlow) resolveLocked(ctx context.Context, code string) (*Resolution, error) {
	f.state = Resolved
	f.code = code
	f.result = nil
	f.mu.Unlock()

	product, err := f.repo.FindByBarcode(ctx, code)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Resolved || f.code != code {
		// Reset durante la consulta: el resultado ya no interesa.
		return nil, nil
	}
	if err != nil {
		f.state = Scanning
		f.code = ""
		return nil, fmt.Errorf("resolver código %s: %w", code, err)
	}
	res := &Resolution{Outcome: NotFound, Barcode: code}
	if product != nil {
		res.Outcome = Found
		res.Product = product
	}
	f.result = res
	f.log.Info().Str("barcode", code).Bool("found", product != nil).Msg("código resuelto")
	return res, nil
}

// Reset vuelve a Idle y olvida el código capturado.
func (f *BarcodeFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Idle
	f.code = ""
	f.result = nil
}

// State estado actual.
func (f *BarcodeFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Code código capturado ("" fuera de Resolved).
func (f *BarcodeFlow) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// Result última resolución (nil mientras se consulta o fuera de Resolved).
func (f *BarcodeFlow) Result() *Resolution {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}
