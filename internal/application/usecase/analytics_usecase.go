package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

// StatisticsUseCase lectura de los agregados calculados por el servidor.
type StatisticsUseCase struct {
	repo repository.StatisticsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// Get devuelve las estadísticas; las listas nil se normalizan a vacías.
func (uc *StatisticsUseCase) Get(ctx context.Context) (*entity.Statistics, error) {
	stats, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if stats.MostAddedProducts == nil {
		stats.MostAddedProducts = []string{}
	}
	if stats.MostRemovedProducts == nil {
		stats.MostRemovedProducts = []string{}
	}
	return stats, nil
}
