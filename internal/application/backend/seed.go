package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
)

// Seed documento de datos iniciales con la forma de un db.json de json-server.
type Seed struct {
	Warehousemans []entity.Warehouseman `json:"warehousemans"`
	Products      []entity.Product      `json:"products"`
}

// DecodeSeed lee un documento Seed en JSON.
func DecodeSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("seed: decodificar: %w", err)
	}
	return &seed, nil
}

// ApplySeed inserta operarios y productos. Los ya existentes se omiten, así el arranque es repetible.
func (s *InventoryService) ApplySeed(ctx context.Context, seed *Seed) error {
	var created, skipped int
	for i := range seed.Warehousemans {
		w := seed.Warehousemans[i]
		if w.ID == "" {
			w.ID = s.newID()
		}
		err := s.store.CreateWarehouseman(ctx, &w)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		case err != nil:
			return fmt.Errorf("seed: almacenero %s: %w", w.ID, err)
		default:
			created++
		}
	}
	for i := range seed.Products {
		_, err := s.CreateProduct(ctx, &seed.Products[i])
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		case err != nil:
			return fmt.Errorf("seed: producto %q: %w", seed.Products[i].Name, err)
		default:
			created++
		}
	}
	s.log.Info().Int("created", created).Int("skipped", skipped).Msg("seed aplicado")
	return nil
}
