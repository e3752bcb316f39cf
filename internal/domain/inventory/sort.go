package inventory

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
)

// SortKey criterio de ordenación del listado de productos.
type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByQuantity SortKey = "quantity"
	SortByName     SortKey = "name"
)

// ParseSortKey valida el nombre de un criterio.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByPrice, SortByQuantity, SortByName:
		return k, nil
	}
	return "", fmt.Errorf("criterio de orden %q: %w", s, domain.ErrInvalidInput)
}

// Direction sentido de la ordenación.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Sorter recuerda un sentido independiente por criterio; cada Sort usa el sentido actual
// del criterio y luego lo invierte. No es seguro para uso concurrente (collate.Collator tampoco).
type Sorter struct {
	dirs map[SortKey]Direction
	col  *collate.Collator
}

// NewSorter crea un Sorter con todos los criterios en ascendente. lang define la colación de nombres.
func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{
		dirs: make(map[SortKey]Direction, 3),
		col:  collate.New(lang),
	}
}

// Direction sentido que usará el próximo Sort con ese criterio.
func (s *Sorter) Direction(key SortKey) Direction {
	return s.dirs[key]
}

// Sort devuelve una nueva ordenación estable de products e invierte el sentido del criterio.
func (s *Sorter) Sort(products []entity.Product, key SortKey) ([]entity.Product, error) {
	cmp, err := s.comparator(key)
	if err != nil {
		return nil, err
	}
	dir := s.dirs[key]
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b entity.Product) int {
		if dir == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	s.dirs[key] = 1 - dir
	return out, nil
}

func (s *Sorter) comparator(key SortKey) (func(a, b entity.Product) int, error) {
	switch key {
	case SortByPrice:
		return func(a, b entity.Product) int { return a.Price.Cmp(b.Price) }, nil
	case SortByQuantity:
		return func(a, b entity.Product) int { return a.TotalQuantity() - b.TotalQuantity() }, nil
	case SortByName:
		return func(a, b entity.Product) int { return s.col.CompareString(a.Name, b.Name) }, nil
	}
	return nil, fmt.Errorf("criterio de orden %q: %w", key, domain.ErrInvalidInput)
}
