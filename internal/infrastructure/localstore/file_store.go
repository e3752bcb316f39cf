// Package localstore caché local del operario autenticado en un archivo JSON.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

// SessionKey clave fija bajo la que se guarda el registro del operario.
const SessionKey = "userToken"

var _ repository.SessionStore = (*FileStore)(nil)

// FileStore guarda {"userToken": <warehouseman>} en un archivo de permisos 0600.
type FileStore struct {
	path string
}

// NewFileStore construye el almacén; el archivo se crea en el primer Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path ruta del archivo.
func (s *FileStore) Path() string { return s.path }

// Save serializa el operario y reemplaza el archivo de forma atómica (escritura + rename).
func (s *FileStore) Save(w *entity.Warehouseman) error {
	if w == nil {
		return fmt.Errorf("guardar sesión: operario nil")
	}
	raw, err := json.MarshalIndent(map[string]*entity.Warehouseman{SessionKey: w}, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("permisos de sesión: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load lee el operario en caché; (nil, nil) si el archivo o la clave no existen.
func (s *FileStore) Load() (*entity.Warehouseman, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var doc map[string]*entity.Warehouseman
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("sesión corrupta en %s: %w", s.path, err)
	}
	return doc[SessionKey], nil
}

// Clear borra la caché completa. No es error si no existía.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
