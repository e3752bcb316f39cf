package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/pkg/logger"
)

const (
	// MinSecretLength longitud mínima validada localmente antes de consultar el backend.
	MinSecretLength = 4
	// MaxSecretLength tope de la máscara de entrada.
	MaxSecretLength = 10
)

// AuthUseCase login por código secreto, restauración y cierre de sesión.
type AuthUseCase struct {
	repo  repository.WarehousemanRepository
	store repository.SessionStore
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.WarehousemanRepository, store repository.SessionStore, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{repo: repo, store: store, log: log}
}

// NormalizeSecret aplica la máscara de entrada: solo letras y dígitos ASCII, en mayúsculas, máximo 10 caracteres.
func NormalizeSecret(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == MaxSecretLength {
				break
			}
		}
	}
	return b.String()
}

// Login busca el operario por código y abre la sesión.
// Un código corto falla sin petición (ErrSecretTooShort). "No encontrado" y fallo de transporte
// se devuelven ambos como ErrIncorrectCode, conservando la causa para errors.Is.
func (uc *AuthUseCase) Login(ctx context.Context, secretCode string) (*entity.Session, error) {
	if utf8.RuneCountInString(secretCode) < MinSecretLength {
		return nil, domain.ErrSecretTooShort
	}
	w, err := uc.repo.FindBySecretKey(ctx, secretCode)
	if err != nil {
		if errors.Is(err, domain.ErrTransport) {
			uc.log.Warn().Err(err).Msg("login: backend no disponible")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrIncorrectCode, err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIncorrectCode, domain.ErrWarehousemanNotFound)
	}
	if err := uc.store.Save(w); err != nil {
		return nil, fmt.Errorf("guardar sesión local: %w", err)
	}
	uc.log.Info().Str("warehouseman_id", w.ID).Str("warehouse_id", w.WarehouseID).Msg("sesión iniciada")
	return entity.NewSession(w), nil
}

// Restore reabre la sesión desde la caché local (relanzamiento de la app).
func (uc *AuthUseCase) Restore() (*entity.Session, error) {
	w, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("restaurar sesión: %w", err)
	}
	if w == nil {
		return nil, domain.ErrNoSession
	}
	return entity.NewSession(w), nil
}

// Logout borra la caché local e invalida la sesión en memoria, aunque el borrado falle.
func (uc *AuthUseCase) Logout(s *entity.Session) error {
	id := s.WarehousemanID()
	if s.Active() {
		defer s.End()
	}
	if err := uc.store.Clear(); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	uc.log.Info().Str("warehouseman_id", id).Msg("sesión cerrada")
	return nil
}
