package repository

import "github.com/jhoicas/invex/internal/domain/entity"

// SessionStore caché local del operario autenticado (persistente entre reinicios).
type SessionStore interface {
	Save(w *entity.Warehouseman) error
	// Load devuelve (nil, nil) si no hay registro en caché.
	Load() (*entity.Warehouseman, error)
	Clear() error
}
